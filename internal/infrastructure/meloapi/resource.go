package meloapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

// resource CRUD REST genérico sobre una colección de la API (/items, /obras, ...).
type resource[W any] struct {
	c    *Client
	path string
}

func (r resource[W]) list(ctx context.Context, sess entity.Session) ([]W, error) {
	var out []W
	if err := r.c.do(ctx, sess, http.MethodGet, r.path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r resource[W]) get(ctx context.Context, sess entity.Session, id string) (*W, error) {
	var out W
	if err := r.c.do(ctx, sess, http.MethodGet, r.path+"/"+escape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// create POST. Si la API no devuelve el documento creado, se devuelve in.
func (r resource[W]) create(ctx context.Context, sess entity.Session, in *W) (*W, error) {
	return r.send(ctx, sess, http.MethodPost, r.path, in)
}

func (r resource[W]) update(ctx context.Context, sess entity.Session, id string, in *W) (*W, error) {
	return r.send(ctx, sess, http.MethodPut, r.path+"/"+escape(id), in)
}

func (r resource[W]) delete(ctx context.Context, sess entity.Session, id string) error {
	return r.c.do(ctx, sess, http.MethodDelete, r.path+"/"+escape(id), nil, nil, nil)
}

func (r resource[W]) send(ctx context.Context, sess entity.Session, method, path string, in *W) (*W, error) {
	var out *W
	if err := r.c.do(ctx, sess, method, path, nil, in, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return in, nil
	}
	return out, nil
}
