package marketplace

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/expenzo/expenzo-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type MarketplaceRepository interface {
	List(ctx context.Context) ([]model.MarketplaceItem, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.MarketplaceItem, error)
	GetByID(ctx context.Context, id uint64) (*model.MarketplaceItem, error)
	Create(ctx context.Context, data *model.MarketplaceItem) (*model.MarketplaceItem, error)
	Update(ctx context.Context, data *model.MarketplaceItem) error
	Delete(ctx context.Context, id uint64) error
}

func NewMarketplaceRepository(conn *sqlx.DB) MarketplaceRepository {
	return &SQL{conn: conn}
}

const (
	itemColumns = `id, title, description, price, image, item_condition, category, seller_phone, user_id, seller_name, seller_email, created_at, updated_at`

	listItemsQuery       = `SELECT ` + itemColumns + ` FROM marketplace_item ORDER BY created_at DESC, id DESC`
	listItemsByUserQuery = `SELECT ` + itemColumns + ` FROM marketplace_item WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	getItemQuery         = `SELECT ` + itemColumns + ` FROM marketplace_item WHERE id = ?`

	insertItemQuery = `INSERT INTO marketplace_item (title, description, price, image, item_condition, category, seller_phone, user_id, seller_name, seller_email, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	// user_id, seller_name and seller_email are immutable after creation.
	updateItemQuery = `UPDATE marketplace_item SET title = ?, description = ?, price = ?, image = ?, item_condition = ?, category = ?, seller_phone = ?, updated_at = NOW() WHERE id = ?`

	deleteItemQuery = `DELETE FROM marketplace_item WHERE id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.MarketplaceItem, error) {
	return s.queryItems(ctx, listItemsQuery)
}

func (s *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.MarketplaceItem, error) {
	return s.queryItems(ctx, listItemsByUserQuery, userID)
}

func (s *SQL) queryItems(ctx context.Context, query string, args ...any) ([]model.MarketplaceItem, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MarketplaceItem, 0)
	for rows.Next() {
		var it model.MarketplaceItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.MarketplaceItem, error) {
	var item model.MarketplaceItem
	if err := s.conn.QueryRowxContext(ctx, getItemQuery, id).StructScan(&item); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) Create(ctx context.Context, data *model.MarketplaceItem) (*model.MarketplaceItem, error) {
	result, err := s.conn.ExecContext(ctx, insertItemQuery,
		data.Title, data.Description, data.Price, data.Image, data.Condition, data.Category,
		data.SellerPhone, data.UserID, data.SellerName, data.SellerEmail)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.MarketplaceItem) error {
	_, err := s.conn.ExecContext(ctx, updateItemQuery,
		data.Title, data.Description, data.Price, data.Image, data.Condition, data.Category,
		data.SellerPhone, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteItemQuery, id)
	return err
}
