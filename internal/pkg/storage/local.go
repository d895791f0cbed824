// Package storage grava e serve as fotos enviadas em um diretório local.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound indica que o arquivo não existe (ou o nome não é um nome gerado válido).
var ErrNotFound = errors.New("arquivo não encontrado")

// AllowedImageTypes são os content types aceitos no upload.
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// IsAllowedImage informa se o content type declarado é uma imagem aceita.
func IsAllowedImage(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	_, ok := AllowedImageTypes[strings.ToLower(mediaType)]
	return ok
}

// imageExtensions lista as extensões aceitas para cada content type de imagem.
var imageExtensions = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/gif":  {".gif"},
	"image/webp": {".webp"},
}

// Extension escolhe a extensão do arquivo salvo: a do nome original, se ela
// pertencer ao content type declarado, ou a padrão desse content type.
func Extension(originalName, contentType string) string {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	mediaType = strings.ToLower(mediaType)

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	for _, allowed := range imageExtensions[mediaType] {
		if ext == allowed {
			return ext
		}
	}
	return AllowedImageTypes[mediaType]
}

// ContentType devolve o content type de imagem de um arquivo salvo, pela extensão.
// Extensões fora da lista viram application/octet-stream.
func ContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	for mediaType, exts := range imageExtensions {
		for _, e := range exts {
			if ext == e {
				return mediaType
			}
		}
	}
	return "application/octet-stream"
}

// LocalStorage salva os blobs sem modificação em Dir, sob nomes UUID.
type LocalStorage struct {
	Dir string
}

// NewLocalStorage garante que o diretório exista.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de uploads: %w", err)
	}
	return &LocalStorage{Dir: dir}, nil
}

// Save grava r sob um nome novo "<uuid><ext>" e devolve esse nome.
func (s *LocalStorage) Save(r io.Reader, ext string) (string, error) {
	name := uuid.NewString() + ext
	path := filepath.Join(s.Dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("falha ao criar arquivo: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("falha ao gravar arquivo: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("falha ao fechar arquivo: %w", err)
	}

	return name, nil
}

// Open abre um arquivo previamente salvo. Nomes com diretórios são recusados.
func (s *LocalStorage) Open(name string) (*os.File, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, ErrNotFound
	}

	f, err := os.Open(filepath.Join(s.Dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}
	return f, nil
}

// Remove apaga um arquivo salvo; usado para desfazer uploads que falharam no DB.
func (s *LocalStorage) Remove(name string) error {
	if name == "" || name != filepath.Base(name) {
		return ErrNotFound
	}
	err := os.Remove(filepath.Join(s.Dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
