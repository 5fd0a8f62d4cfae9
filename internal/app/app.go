// Package app wires the storage layer and the curriculum services
// together for the CLI entry points.
package app

import (
	"fmt"

	"github.com/abhisek/skilltrail/internal/logger"
	"github.com/abhisek/skilltrail/internal/predict"
	"github.com/abhisek/skilltrail/internal/progress"
	"github.com/abhisek/skilltrail/internal/quiz"
	"github.com/abhisek/skilltrail/internal/recommend"
	"github.com/abhisek/skilltrail/internal/store"
)

// App holds the assembled services over one open store.
type App struct {
	Store     *store.Store
	Log       *logger.Logger
	Progress  *progress.Service
	Quiz      *quiz.Service
	Predict   *predict.Service
	Recommend *recommend.Service
}

// New opens the database at dbPath and builds the service graph.
// Callers own Close.
func New(dbPath, mode string) (*App, error) {
	log, err := logger.New(mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	prog := progress.NewService(st.ProgressRepo())
	return &App{
		Store:     st,
		Log:       log,
		Progress:  prog,
		Quiz:      quiz.NewService(quiz.NewStaticBank(), st.AttemptRepo(), prog),
		Predict:   predict.NewService(st.SessionRepo(), prog),
		Recommend: recommend.NewService(st.SessionRepo(), prog),
	}, nil
}

// Close releases the store and flushes buffered log output.
func (a *App) Close() error {
	a.Log.Sync()
	return a.Store.Close()
}
