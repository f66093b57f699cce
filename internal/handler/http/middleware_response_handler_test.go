// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newResponseWriter(rec)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusBadRequest)

	assert.Equal(t, http.StatusCreated, w.Status())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_Write_SetsImplicit200(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newResponseWriter(rec)

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.Status())
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	w.Write([]byte("abc"))
	w.Write([]byte("defg"))

	assert.Equal(t, 7, w.size)
}

func TestResponseWriter_StatusWithoutWrites(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, 0, w.size)
}

func TestResponseWriter_FlushForwards(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newResponseWriter(rec)

	w.Flush()

	assert.True(t, rec.Flushed)
	assert.Equal(t, http.StatusOK, w.Status())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newResponseWriter(rec)

	assert.Same(t, rec, w.Unwrap())
}

func TestNewResponseWriter_ReusesWrapper(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Same(t, w, newResponseWriter(w))
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newResponseWriter(rec)

	w.Header().Set("X-Test", "1")
	w.WriteHeader(http.StatusAccepted)

	assert.Equal(t, "1", rec.Header().Get("X-Test"))
}
