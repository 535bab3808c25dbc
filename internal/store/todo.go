package store

import (
	"database/sql"
	"fmt"

	"github.com/drollins/taskbox/internal/model"
)

// TodoStore persists todo records. Every read, update, and delete filters by
// owner in addition to id, so one user's token can never touch another's rows.
type TodoStore struct {
	db *sql.DB
}

func NewTodoStore(db *sql.DB) *TodoStore {
	return &TodoStore{db: db}
}

func scanTodo(scanner interface{ Scan(...any) error }) (*model.Todo, error) {
	var td model.Todo
	err := scanner.Scan(&td.ID, &td.Title, &td.Description, &td.UserID, &td.CreatedAt, &td.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &td, nil
}

const todoCols = `id, title, description, user_id, created_at, updated_at`

func (s *TodoStore) Create(userID int64, title, description string) (*model.Todo, error) {
	result, err := s.db.Exec(
		`INSERT INTO todos (title, description, user_id) VALUES (?, ?, ?)`,
		title, description, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id, userID)
}

func (s *TodoStore) GetByID(id, userID int64) (*model.Todo, error) {
	row := s.db.QueryRow(
		`SELECT `+todoCols+` FROM todos WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	td, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return td, nil
}

func (s *TodoStore) ListByUser(userID int64) ([]model.Todo, error) {
	rows, err := s.db.Query(
		`SELECT `+todoCols+` FROM todos WHERE user_id = ? ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		td, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, *td)
	}
	return todos, rows.Err()
}

func (s *TodoStore) Update(id, userID int64, title, description string) error {
	_, err := s.db.Exec(
		`UPDATE todos SET title = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		title, description, id, userID,
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return nil
}

func (s *TodoStore) Delete(id, userID int64) error {
	_, err := s.db.Exec(`DELETE FROM todos WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}
