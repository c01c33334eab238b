package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/genricoloni/screend/internal/domain"
	"github.com/genricoloni/screend/internal/domain/mocks"
	"github.com/genricoloni/screend/internal/engine"
	"github.com/genricoloni/screend/internal/store"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestAppGraphValidity verifies that the dependency graph is resolvable.
// This test will fail if you forget an fx.Provide for a required interface.
func TestAppGraphValidity(t *testing.T) {
	// fx.ValidateApp checks that there are no missing or cyclic dependencies
	err := fx.ValidateApp(AppOptions)
	if err != nil {
		t.Errorf("Dependency graph is not valid: %v", err)
	}
}

// TestNewLogger specifically verifies the logger configuration
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "Default", level: "", wantLevel: zapcore.InfoLevel},
		{name: "Debug override", level: "debug", wantLevel: zapcore.DebugLevel},
		{name: "Invalid level", level: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SCREEND_LOG_LEVEL", tt.level)

			logger, err := newLogger()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Failed to create logger: %v", err)
			}
			if logger == nil {
				t.Fatal("Logger should not be nil")
			}
			if !logger.Core().Enabled(tt.wantLevel) || logger.Core().Enabled(tt.wantLevel-1) {
				t.Errorf("logger should be enabled from %v", tt.wantLevel)
			}
			logger.Info("Test logger initialization")
		})
	}
}

// TestEndToEndStartup runs the real graph with the display server and the
// system bus replaced by mocks. A virtual screen added while running must be
// persisted when the daemon stops.
func TestEndToEndStartup(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "screens.db")
	cfgPath := filepath.Join(dir, "config.yaml")
	content := "state_db: " + dbPath + "\ndebounce: 1h\nvirtual:\n  width: 1280\n  height: 720\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", dir)
	t.Setenv("SCREEND_CONFIG", cfgPath)
	t.Setenv("SCREEND_STATE_DB", "")
	t.Setenv("SCREEND_DEBOUNCE", "")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockDisplayBackend(ctrl)
	backend.EXPECT().Outputs(gomock.Any()).Return(nil, nil)
	backend.EXPECT().Close().Return(nil)

	mon := mocks.NewMockPowerMonitor(ctrl)
	mon.EXPECT().Events().Return(nil)
	mon.EXPECT().Start(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	mon.EXPECT().Stop(gomock.Any()).Return(nil)

	var manager *engine.Manager
	app := fx.New(
		AppOptions,
		fx.NopLogger, // Silence Fx logs during tests
		fx.Decorate(func() domain.DisplayBackend { return backend }),
		fx.Decorate(func() domain.PowerMonitor { return mon }),
		fx.Populate(&manager),
	)

	// Verify that the app can start without errors
	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("App failed to start: %v", err)
	}

	id, err := manager.AddVirtualScreen(domain.VirtualScreenConfigs{ID: domain.InvalidScreenID, Name: "cast"})
	if err != nil {
		t.Fatalf("AddVirtualScreen: %v", err)
	}
	if code := manager.SetResolution(id, 1024, 768); code != domain.StatusSuccess {
		t.Fatalf("SetResolution: %v", code)
	}

	// Verify that the app can stop without errors
	if err := app.Stop(context.Background()); err != nil {
		t.Fatalf("App failed to stop: %v", err)
	}

	st, err := store.Open(zap.NewNop(), dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer st.Close()

	info, ok, err := st.Load(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("virtual screen state not persisted: ok=%v err=%v", ok, err)
	}
	if info.Width != 1024 || info.Height != 768 {
		t.Errorf("persisted size: want 1024x768, got %dx%d", info.Width, info.Height)
	}
}
