package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// Session is one connected editor.
type Session struct {
	UUID uuid.UUID     `json:"uuid" zap:"uuid"`
	Conn jsonrpc2.Conn `json:"-" zap:"-"`
	Name string        `json:"name" zap:"name"`
}

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"
