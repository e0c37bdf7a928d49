package helper

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AttachmentName builds the export filename: {base}_{mode}_{yyyy-MM-dd}.{ext}
func AttachmentName(base, mode, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", base, mode, time.Now().Format("2006-01-02"), ext)
}

// SendDownload streams bytes as a file attachment.
func SendDownload(c *fiber.Ctx, filename, contentType string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
