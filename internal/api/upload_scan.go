package api

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/dutchcoders/go-clamd"
)

var errMaliciousFile = errors.New("malicious file detected")

// scanUpload streams an uploaded file through clamd. A non-empty scanner
// address is required; callers skip the scan when none is configured.
func scanUpload(clamdAddr string, file *multipart.FileHeader) error {
	clamdClient := clamd.NewClamd(clamdAddr)

	fileReader, err := file.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}

	abortChan := make(chan bool)
	scanChan, err := clamdClient.ScanStream(fileReader, abortChan)
	fileReader.Close()
	if err != nil {
		return fmt.Errorf("scan upload: %w", err)
	}
	defer close(abortChan)

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return errMaliciousFile
		}
	}
	return nil
}
