package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"harborhr/backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBenefitFormRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/v1/benefit_forms", ListBenefitFormsHandler)
	router.GET("/api/v1/benefit_forms/download", DownloadBenefitFormHandler)
	router.POST("/api/v1/benefit_forms/upload", UploadBenefitFormHandler)
	return router
}

// withBenefitFormsDir aponta o diretório de formulários para um temp dir do
// teste e restaura a configuração original no final.
func withBenefitFormsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	original := config.Cfg.BenefitFormsDir
	config.Cfg.BenefitFormsDir = dir
	t.Cleanup(func() { config.Cfg.BenefitFormsDir = original })
	return dir
}

func TestDownloadBenefitFormHandler(t *testing.T) {
	router := newBenefitFormRouter()
	dir := withBenefitFormsDir(t)

	content := []byte("%PDF-1.4 dental plan enrollment")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dental_plan.pdf"), content, 0o644))

	t.Run("Existing allowlisted file is served as attachment", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/benefit_forms/download?name=dental_plan.pdf&type=pdf", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, content, rr.Body.Bytes())
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "dental_plan.pdf")
	})

	t.Run("Path traversal attempt is redirected to the listing", func(t *testing.T) {
		traversal := url.QueryEscape("../../etc/passwd")
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/benefit_forms/download?name="+traversal+"&type=pdf", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, BenefitFormsPath, rr.Header().Get("Location"))
	})

	t.Run("Disallowed type is redirected even when the file exists", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "script.sh"), []byte("#!/bin/sh"), 0o644))

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/benefit_forms/download?name=script.sh&type=sh", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, BenefitFormsPath, rr.Header().Get("Location"))
	})

	t.Run("Type parameter is case sensitive against the allowlist", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/benefit_forms/download?name=dental_plan.pdf&type=PDF", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
	})

	t.Run("Missing file is redirected", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/benefit_forms/download?name=missing.pdf&type=pdf", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, BenefitFormsPath, rr.Header().Get("Location"))
	})

	t.Run("Missing name is redirected", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/benefit_forms/download?type=pdf", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
	})
}

func TestListBenefitFormsHandler(t *testing.T) {
	router := newBenefitFormRouter()
	dir := withBenefitFormsDir(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "health_plan.pdf"), []byte("pdf"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("txt"), 0o644))
	// Fora do allowlist: não deve aparecer na listagem.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "backup.tar.gz"), []byte("gz"), 0o644))

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/benefit_forms", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Forms []BenefitFormInfo `json:"forms"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Forms, 2)

	names := []string{resp.Forms[0].Name, resp.Forms[1].Name}
	assert.Contains(t, names, "health_plan.pdf")
	assert.Contains(t, names, "notes.txt")
}

func buildUploadRequest(t *testing.T, filename string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("upload", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("form contents"))
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/benefit_forms/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadBenefitFormHandler(t *testing.T) {
	router := newBenefitFormRouter()

	t.Run("Allowed file is saved in the forms directory", func(t *testing.T) {
		dir := withBenefitFormsDir(t)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, buildUploadRequest(t, "vision_plan.docx", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "File Successfully Uploaded!")

		saved, err := os.ReadFile(filepath.Join(dir, "vision_plan.docx"))
		require.NoError(t, err)
		assert.Equal(t, []byte("form contents"), saved)
	})

	t.Run("Client supplied path is reduced to its basename", func(t *testing.T) {
		dir := withBenefitFormsDir(t)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, buildUploadRequest(t, "../outside.pdf", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		_, err := os.Stat(filepath.Join(dir, "outside.pdf"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(filepath.Dir(dir), "outside.pdf"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Disallowed extension is rejected", func(t *testing.T) {
		withBenefitFormsDir(t)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, buildUploadRequest(t, "malware.exe", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "File type not allowed")
	})

	t.Run("Backup requested without a configured provider still succeeds", func(t *testing.T) {
		withBenefitFormsDir(t)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, buildUploadRequest(t, "life_insurance.pdf", map[string]string{"backup": "1"}))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "backup_key")
	})

	t.Run("Missing file part is rejected", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/benefit_forms/upload", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
