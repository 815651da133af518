package model

// FileInfo describes an audio file handed in by a caller
type FileInfo struct {
	Name     string
	Size     int64
	MimeType string
}

// AudioPayload is the encoded audio sent to the remote capability.
// Data is standard base64 without a data URL header.
type AudioPayload struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// EncodedSize returns the length of the encoded data in bytes
func (p AudioPayload) EncodedSize() int {
	return len(p.Data)
}
