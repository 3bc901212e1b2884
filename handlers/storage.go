package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"furytails/services/storage"
	"furytails/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler serves document uploads and download links.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// uploadFolders maps the upload kinds the console accepts onto their
// storage folders.
var uploadFolders = map[string]string{
	"vaccinations": storage.FolderVaccinations,
	"receipts":     storage.FolderReceipts,
	"feeding":      storage.FolderFeeding,
}

// UploadFileHandler handles POST /uploads/:kind.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	kind := c.Param("kind")
	folder, ok := uploadFolders[kind]
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid upload kind",
			"allowed values are 'vaccinations', 'receipts' and 'feeding'")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, folder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload file", err.Error())
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to construct download URL", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"publicId":    publicID,
		"downloadURL": downloadURL,
	})
}

// GetDownloadURLHandler handles GET /uploads/:kind/url. Vaccination
// records get a signed short-lived link; the rest are public.
func (h *StorageHandler) GetDownloadURLHandler(c *gin.Context) {
	kind := c.Param("kind")
	if _, ok := uploadFolders[kind]; !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid upload kind",
			"allowed values are 'vaccinations', 'receipts' and 'feeding'")
		return
	}
	publicID := c.Query("publicId")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing publicId", "")
		return
	}

	var (
		url string
		err error
	)
	if kind == "vaccinations" {
		expiry := 15 * time.Minute
		if expStr := c.Query("expires"); expStr != "" {
			if exp, parseErr := time.ParseDuration(expStr); parseErr == nil {
				expiry = exp
			}
		}
		url, err = h.StorageSvc.GetSecureDownloadURL(c, "image", publicID, expiry)
	} else {
		url, err = h.StorageSvc.GetDownloadURL(c, "image", publicID)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate download URL", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// DeleteFileHandler handles DELETE /uploads.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing publicId", "")
		return
	}
	if err := h.StorageSvc.DeleteFile(c, publicID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete file", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
