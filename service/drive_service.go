package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DriveService stores generated artwork in a Google Drive folder and
// hands back a public URL that can travel through the Shopify cart
type DriveService struct {
	client   *drive.Service
	folderID string
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(credentialsPath, folderID string) (*DriveService, error) {
	ctx := context.Background()

	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// UploadImage uploads PNG bytes under the given filename and returns a
// publicly readable URL. The file is shared read-only with anyone who
// has the link, because Printify fetches the artwork by URL at
// fulfillment time.
func (ds *DriveService) UploadImage(filename string, data []byte) (string, error) {
	file := &drive.File{
		Name:     filename,
		MimeType: "image/png",
	}
	if ds.folderID != "" {
		file.Parents = []string{ds.folderID}
	}

	created, err := ds.client.Files.Create(file).
		Media(bytes.NewReader(data), googleapi.ContentType("image/png")).
		Fields("id").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload image to drive: %w", err)
	}

	_, err = ds.client.Permissions.Create(created.Id, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).Do()
	if err != nil {
		return "", fmt.Errorf("failed to share uploaded image: %w", err)
	}

	// Direct-download URL form, same host Drive uses for public files
	imageURL := fmt.Sprintf("https://drive.google.com/uc?id=%s", created.Id)
	log.Printf("✅ UploadImage: stored %s (%d bytes) as %s", filename, len(data), imageURL)

	return imageURL, nil
}
