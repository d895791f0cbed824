package upload

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/httpx"
	"gopets/internal/pkg/logger"
	"gopets/internal/pkg/storage"
	"gopets/internal/service/petservice"
)

// multipartMemory é quanto do formulário fica em memória; o resto vai para arquivos temporários.
const multipartMemory = 8 << 20

// PhotoService é a parte do serviço de pets usada pelo upload.
type PhotoService interface {
	AddPhotos(ctx context.Context, petID int64, uploads []petservice.PhotoUpload) (domain.Pet, error)
}

type Handler struct {
	Service        PhotoService
	Files          *storage.LocalStorage
	MaxUploadBytes int64
	MaxFiles       int
	Logger         logger.Logger
}

func NewHandler(svc PhotoService, files *storage.LocalStorage, maxUploadBytes int64, log logger.Logger) *Handler {
	return &Handler{Service: svc, Files: files, MaxUploadBytes: maxUploadBytes, MaxFiles: 10, Logger: log}
}

// UploadPhotosHandler godoc
// @Summary      Envia fotos de um pet
// @Description  Campo multipart "files" (um ou mais). Até 5 MB por arquivo; jpeg, png, gif ou webp.
// @Tags         Pets
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      int   true  "ID do pet"
// @Param        files  formData  file  true  "imagens"
// @Success      200  {object}  domain.Pet
// @Failure      400  {object}  domain.ErrorResponse
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /pets/{id}/photos [post]
func (h *Handler) UploadPhotosHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	// Limite do corpo inteiro: todos os arquivos no tamanho máximo mais folga para os cabeçalhos.
	r.Body = http.MaxBytesReader(w, r.Body, int64(h.MaxFiles)*h.MaxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if httpx.ContentLengthExceeded(err) {
			httpx.Respond(w, r, h.Logger, nil, apperror.NewValidationError("Corpo da requisição excede o tamanho permitido."), http.StatusOK)
			return
		}
		httpx.Respond(w, r, h.Logger, nil, apperror.NewValidationError("Formulário multipart inválido."), http.StatusOK)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) > h.MaxFiles {
		httpx.Respond(w, r, h.Logger, nil, apperror.NewFieldValidationError(map[string]string{
			"files": "quantidade de arquivos acima do permitido",
		}), http.StatusOK)
		return
	}

	uploads := make([]petservice.PhotoUpload, 0, len(headers))
	for _, fh := range headers {
		uploads = append(uploads, toUpload(fh))
	}

	pet, err := h.Service.AddPhotos(r.Context(), id, uploads)
	httpx.Respond(w, r, h.Logger, pet, err, http.StatusOK)
}

func toUpload(fh *multipart.FileHeader) petservice.PhotoUpload {
	return petservice.PhotoUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// ServeFileHandler godoc
// @Summary      Serve uma foto enviada
// @Tags         Uploads
// @Produce      octet-stream
// @Param        filename  path  string  true  "nome do arquivo"
// @Success      200
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /uploads/{filename} [get]
func (h *Handler) ServeFileHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	f, err := h.Files.Open(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Respond(w, r, h.Logger, nil, apperror.NewNotFoundError("Arquivo não encontrado"), http.StatusOK)
			return
		}
		httpx.Respond(w, r, h.Logger, nil, apperror.NewInternalError("Falha ao abrir arquivo.", err), http.StatusOK)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, apperror.NewInternalError("Falha ao abrir arquivo.", err), http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", storage.ContentType(info.Name()))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
