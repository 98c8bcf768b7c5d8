package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"donation-service/src/internal/entity"
	"donation-service/src/pkg/databases/rdbms"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var rewardSchema = []string{
	`CREATE TABLE IF NOT EXISTS rewards (
		id VARCHAR(64) PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description TEXT,
		points_required INTEGER NOT NULL,
		image VARCHAR(500),
		reward_type VARCHAR(32) NOT NULL,
		active BOOLEAN NOT NULL,
		available_quantity INTEGER NULL,
		highlighted BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_rewards (
		id VARCHAR(64) PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		reward_id VARCHAR(64) NOT NULL,
		reward_snapshot TEXT NOT NULL,
		assigned_at TIMESTAMP NOT NULL,
		status VARCHAR(16) NOT NULL,
		code VARCHAR(16) NOT NULL UNIQUE,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS user_points (
		user_id VARCHAR(64) PRIMARY KEY,
		total INTEGER NOT NULL,
		available INTEGER NOT NULL,
		spent INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS point_transactions (
		id VARCHAR(64) PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		seq INTEGER NOT NULL,
		occurred_at TIMESTAMP NOT NULL,
		amount INTEGER NOT NULL,
		tx_type VARCHAR(16) NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS leaderboard_participants (
		user_id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		points INTEGER NOT NULL,
		anonymous BOOLEAN NOT NULL
	)`,
}

const rewardColumns = `id, title, description, points_required, image, reward_type, active, available_quantity, highlighted`

type userRewardRow struct {
	entity.UserReward
	Snapshot string `db:"reward_snapshot"`
}

type participantRow struct {
	UserID    string `db:"user_id"`
	Name      string `db:"name"`
	Points    int    `db:"points"`
	Anonymous bool   `db:"anonymous"`
}

// SQLRewardRepository persists the rewards domain through sqlx on any of the
// drivers rdbms supports. Queries are written with ? and rebound per driver.
type SQLRewardRepository struct {
	DB rdbms.DBInterface
}

func NewSQLRewardRepository(db rdbms.DBInterface) *SQLRewardRepository {
	return &SQLRewardRepository{DB: db}
}

// Migrate creates the tables when missing.
func (r *SQLRewardRepository) Migrate(ctx context.Context) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	for _, stmt := range rewardSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// LoadSeed inserts the seed catalogue once; a non-empty rewards table is
// left alone.
func (r *SQLRewardRepository) LoadSeed(ctx context.Context, seed Seed) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM rewards`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range seed.Rewards {
		if err := insertReward(ctx, tx, &seed.Rewards[i]); err != nil {
			return err
		}
	}
	for i := range seed.UserRewards {
		if err := insertUserReward(ctx, tx, &seed.UserRewards[i]); err != nil {
			return err
		}
	}
	for _, p := range seed.Points {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO user_points (user_id, total, available, spent) VALUES (?, ?, ?, ?)`),
			p.UserID, p.Total, p.Available, p.Spent); err != nil {
			return err
		}
		// history is most-recent-first; seq grows with age reversed
		for i := len(p.History) - 1; i >= 0; i-- {
			if err := insertTransaction(ctx, tx, &p.History[i], len(p.History)-i); err != nil {
				return err
			}
		}
	}
	for _, pt := range seed.Participants {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO leaderboard_participants (user_id, name, points, anonymous) VALUES (?, ?, ?, ?)`),
			pt.UserID, pt.Name, pt.Points, pt.Anonymous); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLRewardRepository) ListRewards(ctx context.Context) ([]entity.Reward, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	rewards := []entity.Reward{}
	if err := db.SelectContext(ctx, &rewards, `SELECT `+rewardColumns+` FROM rewards ORDER BY id`); err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *SQLRewardRepository) FindReward(ctx context.Context, id string) (*entity.Reward, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	return findReward(ctx, db, id)
}

func (r *SQLRewardRepository) CreateReward(ctx context.Context, reward *entity.Reward) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	return insertReward(ctx, db, reward)
}

// UpdateReward checks existence with a lookup instead of RowsAffected, which
// MySQL reports as zero when the row already holds the new values.
func (r *SQLRewardRepository) UpdateReward(ctx context.Context, reward *entity.Reward) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := findReward(ctx, tx, reward.ID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(`UPDATE rewards SET title = ?, description = ?, points_required = ?, image = ?,
		reward_type = ?, active = ?, available_quantity = ?, highlighted = ? WHERE id = ?`),
		reward.Title, reward.Description, reward.PointsRequired, reward.Image, string(reward.Type),
		reward.Active, reward.AvailableQuantity, reward.Highlighted, reward.ID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLRewardRepository) DeleteReward(ctx context.Context, id string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := findReward(ctx, tx, id); err != nil {
		return err
	}
	var assigned int
	if err := tx.GetContext(ctx, &assigned, tx.Rebind(`SELECT COUNT(*) FROM user_rewards WHERE reward_id = ?`), id); err != nil {
		return err
	}
	if assigned > 0 {
		return ErrRewardAssigned
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM rewards WHERE id = ?`), id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLRewardRepository) GetPoints(ctx context.Context, userID string) (*entity.UserPoints, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	return loadPoints(ctx, db, userID)
}

// Redeem moves the points with a conditional UPDATE inside one transaction;
// a concurrent redemption that already spent the balance makes it match no
// row and the call fails with ErrInsufficientPoints.
func (r *SQLRewardRepository) Redeem(ctx context.Context, userID, rewardID string, at time.Time) (*entity.UserReward, *entity.UserPoints, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, nil, err
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	reward, err := findReward(ctx, tx, rewardID)
	if err != nil {
		return nil, nil, err
	}
	if !reward.Active {
		return nil, nil, ErrRewardInactive
	}
	if reward.AvailableQuantity != nil && *reward.AvailableQuantity <= 0 {
		return nil, nil, ErrRewardSoldOut
	}

	cost := reward.PointsRequired
	res, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE user_points SET available = available - ?, spent = spent + ?
		WHERE user_id = ? AND available >= ?`), cost, cost, userID, cost)
	if err != nil {
		return nil, nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, nil, err
	} else if n == 0 {
		return nil, nil, ErrInsufficientPoints
	}

	if reward.AvailableQuantity != nil {
		res, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE rewards SET available_quantity = available_quantity - 1
			WHERE id = ? AND available_quantity > 0`), rewardID)
		if err != nil {
			return nil, nil, err
		}
		if n, err := res.RowsAffected(); err != nil {
			return nil, nil, err
		} else if n == 0 {
			return nil, nil, ErrRewardSoldOut
		}
		q := *reward.AvailableQuantity - 1
		reward.AvailableQuantity = &q
	}

	var seq int
	if err := tx.GetContext(ctx, &seq, tx.Rebind(`SELECT COALESCE(MAX(seq), 0) FROM point_transactions WHERE user_id = ?`), userID); err != nil {
		return nil, nil, err
	}
	if err := insertTransaction(ctx, tx, &entity.PointTransaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        at,
		Amount:      cost,
		Type:        entity.TransactionSpent,
		Description: "Canje: " + reward.Title,
	}, seq+1); err != nil {
		return nil, nil, err
	}

	code, err := uniqueCode(codeLookup(ctx, tx))
	if err != nil {
		return nil, nil, err
	}
	ur := &entity.UserReward{
		ID:         "ur-" + uuid.NewString(),
		UserID:     userID,
		RewardID:   rewardID,
		Reward:     *reward,
		AssignedAt: at,
		Status:     entity.StatusAssigned,
		Code:       code,
	}
	if err := insertUserReward(ctx, tx, ur); err != nil {
		return nil, nil, err
	}

	points, err := loadPoints(ctx, tx, userID)
	if err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return ur, points, nil
}

func (r *SQLRewardRepository) AssignReward(ctx context.Context, userReward *entity.UserReward) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	reward, err := findReward(ctx, tx, userReward.RewardID)
	if err != nil {
		return err
	}
	code, err := uniqueCode(codeLookup(ctx, tx))
	if err != nil {
		return err
	}
	if userReward.ID == "" {
		userReward.ID = "ur-" + uuid.NewString()
	}
	if userReward.Status == "" {
		userReward.Status = entity.StatusAssigned
	}
	userReward.Code = code
	userReward.Reward = *reward
	if err := insertUserReward(ctx, tx, userReward); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLRewardRepository) ListUserRewards(ctx context.Context, userID string) ([]entity.UserReward, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	query := `SELECT id, user_id, reward_id, reward_snapshot, assigned_at, status, code, notes FROM user_rewards`
	args := []interface{}{}
	if userID != "" {
		query += ` WHERE user_id = ?`
		args = append(args, userID)
	}
	query += ` ORDER BY assigned_at, id`

	var rows []userRewardRow
	if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
		return nil, err
	}
	out := make([]entity.UserReward, 0, len(rows))
	for _, row := range rows {
		ur, err := row.decode()
		if err != nil {
			return nil, err
		}
		out = append(out, ur)
	}
	return out, nil
}

func (r *SQLRewardRepository) UpdateUserRewardStatus(ctx context.Context, id string, status entity.UserRewardStatus) (*entity.UserReward, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var row userRewardRow
	err = tx.GetContext(ctx, &row, tx.Rebind(`SELECT id, user_id, reward_id, reward_snapshot, assigned_at, status, code, notes
		FROM user_rewards WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE user_rewards SET status = ? WHERE id = ?`), string(status), id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	ur, err := row.decode()
	if err != nil {
		return nil, err
	}
	ur.Status = status
	return &ur, nil
}

func (r *SQLRewardRepository) ListParticipants(ctx context.Context) ([]entity.LeaderboardParticipant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	var rows []participantRow
	if err := db.SelectContext(ctx, &rows, `SELECT user_id, name, points, anonymous FROM leaderboard_participants`); err != nil {
		return nil, err
	}
	out := make([]entity.LeaderboardParticipant, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.LeaderboardParticipant(row))
	}
	return out, nil
}

func (row userRewardRow) decode() (entity.UserReward, error) {
	ur := row.UserReward
	if err := json.Unmarshal([]byte(row.Snapshot), &ur.Reward); err != nil {
		return ur, fmt.Errorf("decode reward snapshot %s: %w", ur.ID, err)
	}
	return ur, nil
}

func findReward(ctx context.Context, e sqlx.ExtContext, id string) (*entity.Reward, error) {
	var reward entity.Reward
	err := sqlx.GetContext(ctx, e, &reward, e.Rebind(`SELECT `+rewardColumns+` FROM rewards WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

func loadPoints(ctx context.Context, e sqlx.ExtContext, userID string) (*entity.UserPoints, error) {
	points := entity.UserPoints{UserID: userID}
	err := sqlx.GetContext(ctx, e, &points, e.Rebind(`SELECT user_id, total, available, spent FROM user_points WHERE user_id = ?`), userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	points.History = []entity.PointTransaction{}
	err = sqlx.SelectContext(ctx, e, &points.History, e.Rebind(`SELECT id, user_id, occurred_at, amount, tx_type, description
		FROM point_transactions WHERE user_id = ? ORDER BY seq DESC`), userID)
	if err != nil {
		return nil, err
	}
	return &points, nil
}

func insertReward(ctx context.Context, e sqlx.ExtContext, reward *entity.Reward) error {
	_, err := e.ExecContext(ctx, e.Rebind(`INSERT INTO rewards (`+rewardColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		reward.ID, reward.Title, reward.Description, reward.PointsRequired, reward.Image, string(reward.Type),
		reward.Active, reward.AvailableQuantity, reward.Highlighted)
	return err
}

func insertUserReward(ctx context.Context, e sqlx.ExtContext, ur *entity.UserReward) error {
	snapshot, err := json.Marshal(ur.Reward)
	if err != nil {
		return err
	}
	_, err = e.ExecContext(ctx, e.Rebind(`INSERT INTO user_rewards (id, user_id, reward_id, reward_snapshot, assigned_at, status, code, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		ur.ID, ur.UserID, ur.RewardID, string(snapshot), ur.AssignedAt, string(ur.Status), ur.Code, ur.Notes)
	return err
}

func insertTransaction(ctx context.Context, e sqlx.ExtContext, t *entity.PointTransaction, seq int) error {
	_, err := e.ExecContext(ctx, e.Rebind(`INSERT INTO point_transactions (id, user_id, seq, occurred_at, amount, tx_type, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`),
		t.ID, t.UserID, seq, t.Date, t.Amount, string(t.Type), t.Description)
	return err
}

func codeLookup(ctx context.Context, tx *sqlx.Tx) func(string) (bool, error) {
	return func(code string) (bool, error) {
		var n int
		if err := tx.GetContext(ctx, &n, tx.Rebind(`SELECT COUNT(*) FROM user_rewards WHERE code = ?`), code); err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

