package admin

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/dto"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/spreadsheet"
	"github.com/tosinajy/carrier-code-verify/internal/shared/errors"
)

const uploadField = "file"

// readUpload parses the uploaded spreadsheet. A missing file yields (nil, nil)
// so callers can report it with their own message.
func readUpload(c *gin.Context, maxBytes int64) (*spreadsheet.Table, error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return nil, nil
	}

	if maxBytes > 0 && header.Size > maxBytes {
		return nil, errors.NewValidationError(fmt.Sprintf("File exceeds the %d MB upload limit.", maxBytes>>20))
	}

	f, err := header.Open()
	if err != nil {
		return nil, errors.NewInternalError("failed to open upload", err.Error())
	}
	defer f.Close()

	table, err := spreadsheet.Read(header.Filename, f)
	if err != nil {
		return nil, errors.NewValidationError("Import Error: " + err.Error())
	}
	return table, nil
}

// importFailureMessage prefixes storage failures the way the upload screens report them.
func importFailureMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		if appErr.Type == errors.ErrorTypeInternal && appErr.Details != "" {
			return "Import Error: " + appErr.Details
		}
		return appErr.Message
	}
	return "Import Error: " + err.Error()
}

func uploadSummary(prefix string, result *dto.ImportResult) string {
	return prefix + " - " + result.Summary()
}

// formUint parses a positive integer form value; anything else reads as 0.
func formUint(c *gin.Context, key string) uint {
	n, err := strconv.ParseUint(c.PostForm(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// formUints parses every positive integer among the repeated form values.
func formUints(c *gin.Context, key string) []uint {
	values := c.PostFormArray(key)
	ids := make([]uint, 0, len(values))
	for _, v := range values {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			continue
		}
		ids = append(ids, uint(n))
	}
	return ids
}
