package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/courier/pkg/compose"
)

// Postgres persists renditions, templates, and identities in PostgreSQL via
// a pgx connection pool. Run Migrate before first use to create the
// courier_* tables.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates an entity store over an existing pool. The caller owns
// the pool lifecycle.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const findRenditionsQuery = `
SELECT id, definition_id, name, enabled, from_address, to_address,
       cc_addresses, bcc_addresses, subject, content, markdown, created_at
FROM courier_renditions
WHERE definition_id = $1 AND (NOT $2 OR enabled)
ORDER BY created_at DESC`

func (p *Postgres) FindRenditions(ctx context.Context, definitionID string, enabledOnly bool) ([]*compose.Rendition, error) {
	rows, err := p.pool.Query(ctx, findRenditionsQuery, definitionID, enabledOnly)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	var out []*compose.Rendition
	for rows.Next() {
		r := &compose.Rendition{}
		if err := rows.Scan(
			&r.ID, &r.DefinitionID, &r.Name, &r.Enabled, &r.From, &r.To,
			&r.CC, &r.BCC, &r.Subject, &r.Content, &r.Markdown, &r.CreatedAt,
		); err != nil {
			return nil, errors.Join(ErrScanFailed, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return out, nil
}

const findTemplatesQuery = `
SELECT id, name, enabled, document, content, replacements, created_at
FROM courier_templates
WHERE NOT $1 OR enabled
ORDER BY created_at DESC`

func (p *Postgres) FindTemplates(ctx context.Context, enabledOnly bool) ([]*compose.Template, error) {
	rows, err := p.pool.Query(ctx, findTemplatesQuery, enabledOnly)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	var out []*compose.Template
	for rows.Next() {
		t := &compose.Template{}
		var replacements []byte
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Enabled, &t.Document, &t.Content,
			&replacements, &t.CreatedAt,
		); err != nil {
			return nil, errors.Join(ErrScanFailed, err)
		}
		if len(replacements) > 0 {
			if err := json.Unmarshal(replacements, &t.Replacements); err != nil {
				return nil, errors.Join(ErrScanFailed, err)
			}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return out, nil
}

const findIdentityQuery = `
SELECT email, name, username, first_name, last_name, group_name
FROM courier_identities
WHERE lower(email) = $1 AND kind = $2`

func (p *Postgres) FindUserByEmail(ctx context.Context, email string) (*compose.Recipient, error) {
	return p.findIdentity(ctx, email, "user")
}

func (p *Postgres) FindGroupByEmail(ctx context.Context, email string) (*compose.Recipient, error) {
	return p.findIdentity(ctx, email, "group")
}

func (p *Postgres) findIdentity(ctx context.Context, email, kind string) (*compose.Recipient, error) {
	r := &compose.Recipient{}
	err := p.pool.QueryRow(ctx, findIdentityQuery, strings.ToLower(email), kind).Scan(
		&r.Email, &r.Name, &r.Username, &r.FirstName, &r.LastName, &r.GroupName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return r, nil
}
