package repository

import (
	"context"

	"github.com/leadbridge/whatsapp-leads-api/internal/db"
	"github.com/leadbridge/whatsapp-leads-api/internal/model"
)

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *model.Lead) error
}

// LeadRepository writes leads through the shared connection manager. The
// manager is asked for the handle on every call, so the first insert after
// an outage re-establishes the connection instead of failing forever.
type LeadRepository struct {
	Manager *db.Manager
}

func (r *LeadRepository) Insert(ctx context.Context, lead *model.Lead) error {
	conn, err := r.Manager.Get(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO whatsapp_leads (numero_telefono, fecha_hora, push_name, nombre_usuario, tipo_saludo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	// A nil TipoSaludo lands as NULL, which is the absent-greeting marker.
	return conn.QueryRowContext(ctx, query,
		lead.NumeroTelefono,
		lead.FechaHora,
		lead.PushName,
		lead.NombreUsuario,
		lead.TipoSaludo,
	).Scan(&lead.ID)
}

var _ LeadRepositoryInterface = (*LeadRepository)(nil)
