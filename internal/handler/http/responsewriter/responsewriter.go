// Package responsewriter records what a handler sent: the status line and
// the number of body bytes. Logging, metrics, tracing and panic recovery all
// read from one shared record per request.
package responsewriter

import "net/http"

// ResponseWriter is an http.ResponseWriter that remembers the response it produced.
type ResponseWriter struct {
	http.ResponseWriter
	status int // zero until the header is sent
	bytes  int
}

// Wrap returns w itself when it is already a *ResponseWriter, so stacked
// middleware observe the same response.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w}
}

// WriteHeader forwards the first status code and ignores later ones.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.status != 0 {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Flush sends buffered data when the underlying writer supports it.
func (w *ResponseWriter) Flush() {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// StatusCode is the status sent, or 200 when the handler wrote nothing.
func (w *ResponseWriter) StatusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *ResponseWriter) BytesWritten() int { return w.bytes }

// HeaderWritten reports whether the status line is already on the wire.
func (w *ResponseWriter) HeaderWritten() bool { return w.status != 0 }

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
