package handlers

import (
	"MyWeddBlue/internal/config"
	"MyWeddBlue/internal/imaging"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// maxUploadBody — лимит исходного файла до сжатия.
const maxUploadBody = 20 << 20

// ImageHandler сжимает изображения орнаментов перед вставкой в коллекцию.
type ImageHandler struct {
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewImageHandler(logger *zap.SugaredLogger, cfg *config.Config) *ImageHandler {
	return &ImageHandler{Logger: logger, Config: cfg}
}

// Compress принимает multipart-поле file и возвращает data URI
func (h *ImageHandler) Compress(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody+1<<20)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Compress: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("Compress: missing file", "error", err)
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBody+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}
	if len(data) > maxUploadBody {
		writeError(w, http.StatusRequestEntityTooLarge, "payload too large")
		return
	}

	opts := imaging.Options{
		Quality:          h.Config.ImageQuality,
		MaxSizeMB:        h.Config.ImageMaxMB,
		MaxWidthOrHeight: h.Config.ImageMaxSide,
	}
	if v, err := strconv.ParseFloat(r.FormValue("quality"), 64); err == nil {
		opts.Quality = v
	}
	if v, err := strconv.ParseFloat(r.FormValue("maxSizeMB"), 64); err == nil {
		opts.MaxSizeMB = v
	}
	if v, err := strconv.Atoi(r.FormValue("maxWidthOrHeight")); err == nil {
		opts.MaxWidthOrHeight = v
	}

	res, err := imaging.Compress(data, opts)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedImage) {
			writeError(w, http.StatusUnsupportedMediaType, "unsupported image format")
			return
		}
		h.Logger.Errorw("Compress: encode failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.Logger.Infow("image compressed", "in", len(data), "out", res.Bytes, "format", res.Format)
	writeJSON(w, http.StatusOK, res)
}
