package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/repository/models"
	"compass-quiz/internal/util"
)

// sqlxResultRepository implements domain.ResultRepository using sqlx.
type sqlxResultRepository struct {
	db        DBTX
	catalogue domain.Catalogue
}

// NewSQLXResultRepository archives results in quiz_results. When catalogue is
// set, loaded results carry the full reference vector of their ideology.
func NewSQLXResultRepository(db DBTX, catalogue domain.Catalogue) domain.ResultRepository {
	return &sqlxResultRepository{db: db, catalogue: catalogue}
}

func fromDomainResult(stored *domain.StoredResult) (*models.QuizResult, error) {
	var supplementary string
	if stored.Result.SupplementaryScores != nil {
		data, err := json.Marshal(stored.Result.SupplementaryScores)
		if err != nil {
			return nil, fmt.Errorf("failed to encode supplementary scores: %w", err)
		}
		supplementary = string(data)
	}
	return &models.QuizResult{
		ID:            stored.ID,
		SessionID:     stored.SessionID,
		QuizType:      string(stored.QuizType),
		MacroCell:     string(stored.Result.MacroCell),
		Ideology:      stored.Result.Ideology.Name,
		Economic:      stored.Result.PrimaryScores.Economic,
		Authority:     stored.Result.PrimaryScores.Authority,
		Cultural:      stored.Result.PrimaryScores.Cultural,
		Supplementary: util.StringToNullString(supplementary),
		CompletedAt:   stored.CompletedAt,
	}, nil
}

func (r *sqlxResultRepository) toDomainResult(model *models.QuizResult) (*domain.StoredResult, error) {
	var supp domain.SupplementaryScores
	if model.Supplementary.Valid && model.Supplementary.String != "" {
		if err := json.Unmarshal([]byte(model.Supplementary.String), &supp); err != nil {
			return nil, fmt.Errorf("failed to decode supplementary scores of result %s: %w", model.ID, err)
		}
	}
	cell := domain.MacroCell(model.MacroCell)
	ideology := domain.Ideology{Name: model.Ideology, MacroCell: cell}
	if r.catalogue != nil {
		for _, candidate := range r.catalogue.ForCell(cell) {
			if candidate.Name == model.Ideology {
				ideology = candidate
				break
			}
		}
	}
	return &domain.StoredResult{
		ID:        model.ID,
		SessionID: model.SessionID,
		QuizType:  domain.QuizType(model.QuizType),
		Result: domain.QuizResult{
			PrimaryScores: domain.PrimaryScores{
				Economic:  model.Economic,
				Authority: model.Authority,
				Cultural:  model.Cultural,
			},
			MacroCell:           cell,
			SupplementaryScores: supp,
			Ideology:            ideology,
		},
		CompletedAt: model.CompletedAt,
	}, nil
}

// SaveResult inserts an archived result.
func (r *sqlxResultRepository) SaveResult(ctx context.Context, stored *domain.StoredResult) error {
	if stored == nil {
		return domain.NewInvalidInputError("cannot archive a nil result")
	}
	model, err := fromDomainResult(stored)
	if err != nil {
		return err
	}

	query := r.db.Rebind(`INSERT INTO quiz_results (id, session_id, quiz_type, macro_cell, ideology, economic, authority, cultural, supplementary, completed_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = r.db.ExecContext(ctx, query,
		model.ID,
		model.SessionID,
		model.QuizType,
		model.MacroCell,
		model.Ideology,
		model.Economic,
		model.Authority,
		model.Cultural,
		model.Supplementary,
		model.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz result: %w", err)
	}
	return nil
}

// GetResultBySessionID returns NOT_FOUND when the session was never archived.
func (r *sqlxResultRepository) GetResultBySessionID(ctx context.Context, sessionID string) (*domain.StoredResult, error) {
	query := r.db.Rebind(`SELECT id, session_id, quiz_type, macro_cell, ideology, economic, authority, cultural, supplementary, completed_at
	          FROM quiz_results WHERE session_id = ?`)
	var model models.QuizResult
	if err := r.db.GetContext(ctx, &model, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("no archived result for session %s", sessionID)).
				WithContext("session_id", sessionID)
		}
		return nil, fmt.Errorf("failed to get quiz result for session %s: %w", sessionID, err)
	}
	return r.toDomainResult(&model)
}

// CountByIdeology returns how many archived results matched each ideology.
func (r *sqlxResultRepository) CountByIdeology(ctx context.Context) (map[string]int, error) {
	query := `SELECT ideology, COUNT(*) AS total FROM quiz_results GROUP BY ideology`
	var rows []models.IdeologyCount
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to count quiz results: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Ideology] = row.Total
	}
	return counts, nil
}
