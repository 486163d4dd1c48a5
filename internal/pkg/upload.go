package pkg

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveUpload 落盘 multipart 文件并返回对外 URL（/uploads/<文件名>）。
// 文件名 = 前缀 + unix 时间戳 + 随机数字段 + 清洗后的原始名；
// 随机段用来避免同一秒内同名文件互相覆盖。
func SaveUpload(fh *multipart.FileHeader, dir, prefix string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", Invalid("Uploaded file is empty")
	}

	code, err := RandDigits(6)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s%d_%s_%s", prefix, time.Now().Unix(), code, sanitizeFilename(fh.Filename))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}

// sanitizeFilename 去掉路径部分，空格换下划线
func sanitizeFilename(name string) string {
	base := filepath.Base(filepath.Clean(name))
	if base == "." || base == string(filepath.Separator) {
		base = "file"
	}
	return strings.ReplaceAll(base, " ", "_")
}
