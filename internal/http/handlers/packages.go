package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"alfatih-backend/internal/domain"
	"alfatih-backend/internal/domain/models"
	"alfatih-backend/internal/http/middleware"
	"alfatih-backend/internal/repositories"
	"alfatih-backend/internal/storage"
	"alfatih-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// PackageHandler serves the public catalog and the admin package CRUD.
// Admin saves arrive as multipart: a "payload" JSON field plus optional
// "image" and "brochure" files. Files go to storage before any DB write,
// so a failed upload never leaves a half-saved package.
type PackageHandler struct {
	Packages *repositories.PackageRepository
	Store    *storage.LocalStore
}

// GET /api/packages
func (h PackageHandler) List(c *gin.Context) {
	packages, err := h.Packages.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil daftar paket", err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/packages/:slug
func (h PackageHandler) GetBySlug(c *gin.Context) {
	pkg, err := h.Packages.GetBySlug(c.Param("slug"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GET /api/admin/packages/:id
func (h PackageHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}
	pkg, err := h.Packages.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// POST /api/admin/packages
func (h PackageHandler) Create(c *gin.Context) {
	pkg, ok := h.bindPackageForm(c)
	if !ok {
		return
	}
	pkg.ID = 0
	pkg.Slug = utils.Slugify(pkg.Title)

	id, err := h.Packages.Create(pkg)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan paket", err)
		return
	}
	pkg.ID = id

	utils.LogEvent(middleware.GetRequestID(c), "packages", "create", pkg.Slug)
	c.JSON(http.StatusCreated, pkg)
}

// PUT /api/admin/packages/:id
func (h PackageHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	pkg, ok := h.bindPackageForm(c)
	if !ok {
		return
	}
	pkg.ID = id
	pkg.Slug = utils.Slugify(pkg.Title)

	if err := h.Packages.Update(pkg); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "packages", "update", pkg.Slug)
	c.JSON(http.StatusOK, pkg)
}

// DELETE /api/admin/packages/:id
func (h PackageHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}
	if err := h.Packages.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "packages", "delete", c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "paket dihapus"})
}

// bindPackageForm decodes the multipart payload and uploads any attached
// files, overwriting ImageURL/BrochureURL with the stored URLs.
func (h PackageHandler) bindPackageForm(c *gin.Context) (models.Package, bool) {
	var pkg models.Package

	payload := c.PostForm("payload")
	if payload == "" {
		RespondError(c, http.StatusBadRequest, "payload tidak ditemukan", nil)
		return pkg, false
	}
	if err := json.Unmarshal([]byte(payload), &pkg); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return pkg, false
	}
	if pkg.Title == "" {
		RespondDomainError(c, domain.ValidationError{Field: "title", Msg: "judul wajib diisi"})
		return pkg, false
	}
	if len(pkg.RoomOptions) == 0 {
		RespondDomainError(c, domain.ValidationError{Field: "room_options", Msg: "minimal satu tipe kamar"})
		return pkg, false
	}

	// The form may still send features as one comma-joined text field.
	if len(pkg.Features) == 0 {
		pkg.Features = utils.SplitList(c.PostForm("features"))
	}

	if url, uploaded, err := h.uploadFormFile(c, "image", storage.BucketPackageImages); err != nil {
		RespondDomainError(c, err)
		return pkg, false
	} else if uploaded {
		pkg.ImageURL = url
	}

	if url, uploaded, err := h.uploadFormFile(c, "brochure", storage.BucketBrochures); err != nil {
		RespondDomainError(c, err)
		return pkg, false
	} else if uploaded {
		pkg.BrochureURL = url
	}

	return pkg, true
}

func (h PackageHandler) uploadFormFile(c *gin.Context, field string, bucket storage.Bucket) (string, bool, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", false, nil
		}
		return "", false, domain.UploadError{Field: field, Err: err}
	}
	url, err := h.saveUpload(header, bucket)
	if err != nil {
		return "", false, domain.UploadError{Field: field, Err: err}
	}
	return url, true, nil
}

func (h PackageHandler) saveUpload(header *multipart.FileHeader, bucket storage.Bucket) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.Store.Upload(bucket, header.Filename, f)
}
