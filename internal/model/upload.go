package model

import "io"

// FileUpload 上傳到物件儲存的檔案
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
