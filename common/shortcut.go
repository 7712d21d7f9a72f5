package common

import (
	"bytes"
	"encoding/json"
	"os"
	"strconv"

	"golang.org/x/exp/constraints"
)

func Encode(data interface{}) ([]byte, error) {
	buff := new(bytes.Buffer)
	encoder := json.NewEncoder(buff)
	err := encoder.Encode(data)
	if err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

func Decode[T interface{}](bs []byte) (*T, error) {
	buff := new(bytes.Buffer)
	var data T
	buff.Write(bs)
	decoder := json.NewDecoder(buff)
	err := decoder.Decode(&data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// ToHex renders an integer as lowercase hex bytes. It never fails,
// which keeps hashing over block fields a pure function.
func ToHex[T constraints.Integer](num T) []byte {
	return []byte(strconv.FormatInt(int64(num), 16))
}

func ExistFile(name string) bool {
	_, err := os.Stat(name)
	return !os.IsNotExist(err)
}
