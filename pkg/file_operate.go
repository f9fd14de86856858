package pkg

import (
	"os"

	"github.com/pkg/errors"
)

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadTextFile 读取整个文本文件
func ReadTextFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", filePath)
	}
	return string(data), nil
}

// WriteTextFile 把内容写入文件
func WriteTextFile(filePath string, data []byte) error {
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", filePath)
	}
	return nil
}
