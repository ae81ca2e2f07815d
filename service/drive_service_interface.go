package service

// DriveServiceInterface defines the contract for blob storage operations
type DriveServiceInterface interface {
	// UploadImage stores PNG bytes under filename and returns a public URL
	UploadImage(filename string, data []byte) (string, error)
}
