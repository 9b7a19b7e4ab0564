package server

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5/middleware"
)

// CompressionMiddleware negotiates brotli, gzip or deflate for JSON responses.
// Other content types, including event streams, are written through untouched.
func CompressionMiddleware(level int) func(http.Handler) http.Handler {
	c := middleware.NewCompressor(level, CompressibleContentTypes...)
	c.SetEncoder(EncodingBrotli, func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c.Handler
}
