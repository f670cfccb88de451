// internal/model/lead.go
package model

import "time"

// Lead is one inbound WhatsApp contact destined for the whatsapp_leads table.
// TipoSaludo is nil when the caller supplied no greeting; it is stored as NULL,
// never as an empty string.
type Lead struct {
	ID             int64     `db:"id" json:"ID"`
	NumeroTelefono string    `db:"numero_telefono" json:"NUMERO_TELEFONO"`
	FechaHora      time.Time `db:"fecha_hora" json:"FECHA_HORA"`
	PushName       string    `db:"push_name" json:"PUSH_NAME"`
	NombreUsuario  string    `db:"nombre_usuario" json:"NOMBRE_USUARIO"`
	TipoSaludo     *string   `db:"tipo_saludo" json:"TIPO_SALUDO,omitempty"`
}

// LeadInput is the raw insert payload. Fields are deliberately untyped:
// clients send whatever their WhatsApp integration produces, and the
// validation layer coerces every value to a trimmed string before checking it.
type LeadInput struct {
	NumeroTelefono any `json:"NUMERO_TELEFONO"`
	FechaHora      any `json:"FECHA_HORA"`
	PushName       any `json:"PUSH_NAME"`
	NombreUsuario  any `json:"NOMBRE_USUARIO"`
	TipoSaludo     any `json:"TIPO_SALUDO"`
}
