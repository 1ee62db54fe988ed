package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"harborhr/backend/internal/filestorage"
	"harborhr/backend/pkg/config"
	hlog "harborhr/backend/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BenefitFormsPath é o destino dos redirects quando um download falha.
const BenefitFormsPath = "/api/v1/benefit_forms"

var allowedBenefitFormTypes = map[string]bool{
	"pdf":  true,
	"doc":  true,
	"docx": true,
	"txt":  true,
}

// BenefitFormInfo descreve um formulário disponível para download.
type BenefitFormInfo struct {
	Name       string `json:"name"`
	SizeBytes  int64  `json:"size_bytes"`
	ModifiedAt string `json:"modified_at"`
}

// ListBenefitFormsHandler lista os formulários presentes no diretório configurado.
func ListBenefitFormsHandler(c *gin.Context) {
	dir, err := filepath.Abs(config.Cfg.BenefitFormsDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Benefit forms directory not available"})
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		hlog.L.Warn("Failed to read benefit forms directory", zap.String("dir", dir), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"forms": []BenefitFormInfo{}})
		return
	}

	forms := []BenefitFormInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(entry.Name())), ".")
		if !allowedBenefitFormTypes[ext] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		forms = append(forms, BenefitFormInfo{
			Name:       entry.Name(),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime().UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"forms": forms})
}

// DownloadBenefitFormHandler serve um formulário como attachment. O nome pedido
// precisa ser igual ao próprio basename (nada de separadores de path), o tipo
// precisa estar no allowlist e o arquivo resolvido precisa ficar dentro do
// diretório de formulários. Qualquer falha redireciona para a listagem.
func DownloadBenefitFormHandler(c *gin.Context) {
	redirectBack := func() {
		c.Redirect(http.StatusFound, BenefitFormsPath)
	}

	name := c.Query("name")
	if name == "" {
		redirectBack()
		return
	}
	if filepath.Base(name) != name {
		hlog.L.Warn("Benefit form download rejected: basename mismatch", zap.String("name", name))
		redirectBack()
		return
	}

	if !allowedBenefitFormTypes[c.Query("type")] {
		redirectBack()
		return
	}

	dir, err := filepath.Abs(config.Cfg.BenefitFormsDir)
	if err != nil {
		redirectBack()
		return
	}

	fullPath := filepath.Join(dir, name)
	if !strings.HasPrefix(fullPath, dir+string(os.PathSeparator)) {
		hlog.L.Warn("Benefit form download rejected: path outside forms directory", zap.String("path", fullPath))
		redirectBack()
		return
	}

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		redirectBack()
		return
	}

	c.FileAttachment(fullPath, name)
}

// UploadBenefitFormHandler salva um formulário enviado por multipart no
// diretório de formulários; com backup=1 o arquivo também vai para o provedor
// de object storage configurado.
func UploadBenefitFormHandler(c *gin.Context) {
	log := hlog.L.Named("UploadBenefitFormHandler")

	fileHeader, err := c.FormFile("upload")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	name := filepath.Base(fileHeader.Filename)
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if !allowedBenefitFormTypes[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	dir, err := filepath.Abs(config.Cfg.BenefitFormsDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Benefit forms directory not available"})
		return
	}

	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
		log.Error("Failed to save uploaded benefit form", zap.String("name", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	response := gin.H{"message": "File Successfully Uploaded!", "file": name}

	backup := c.PostForm("backup")
	if backup == "1" || backup == "true" {
		if filestorage.DefaultFileStorageProvider == nil {
			log.Warn("Backup requested but no file storage provider configured", zap.String("name", name))
		} else {
			src, err := fileHeader.Open()
			if err != nil {
				log.Error("Failed to reopen uploaded file for backup", zap.Error(err))
			} else {
				defer src.Close()
				objectKey := fmt.Sprintf("benefit_forms/%s-%s", uuid.New().String(), name)
				stored, err := filestorage.DefaultFileStorageProvider.UploadFile(c.Request.Context(), objectKey, src)
				if err != nil {
					log.Error("Failed to back up benefit form", zap.String("object_key", objectKey), zap.Error(err))
				} else {
					response["backup_key"] = stored
				}
			}
		}
	}

	c.JSON(http.StatusOK, response)
}
