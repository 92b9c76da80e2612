package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/napat-dev/lending-service/lending/internal/errs"
	"github.com/napat-dev/lending-service/lending/internal/model"
)

// Catalog writes are a disjoint path from the lifecycle: they never touch
// asset_status, so they cannot race with status transitions.

func (r *repository) CreateAsset(ctx context.Context, req model.CreateAssetRequest) (model.Asset, error) {
	cols := []string{"asset_name", "description"}
	vals := []interface{}{req.Name, req.Description}
	if req.Image != "" {
		cols = append(cols, "image")
		vals = append(vals, req.Image)
	}
	q, args, err := qb.Insert(assetTableName).
		Columns(cols...).
		Values(vals...).
		Suffix("returning asset_id, asset_name, description, image, asset_status").
		ToSql()
	if err != nil {
		return model.Asset{}, err
	}

	var asset model.Asset
	if err := r.db.GetContext(ctx, &asset, q, args...); err != nil {
		return model.Asset{}, err
	}
	return asset, nil
}

func (r *repository) UpdateAsset(ctx context.Context, assetID int, req model.UpdateAssetRequest) error {
	builder := qb.Update(assetTableName).Where(sq.Eq{"asset_id": assetID})
	if req.Name != nil {
		builder = builder.Set("asset_name", *req.Name)
	}
	if req.Description != nil {
		builder = builder.Set("description", *req.Description)
	}
	if req.Image != nil {
		builder = builder.Set("image", *req.Image)
	}

	q, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteAsset(ctx context.Context, assetID int) error {
	q, args, err := qb.Delete(assetTableName).Where(sq.Eq{"asset_id": assetID}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errs.ErrAssetInUse
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListAssets(ctx context.Context) ([]model.Asset, error) {
	q, args, err := qb.Select("asset_id", "asset_name", "description", "image", "asset_status").
		From(assetTableName).
		OrderBy("asset_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var assets []model.Asset
	if err := r.db.SelectContext(ctx, &assets, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return assets, nil
}
