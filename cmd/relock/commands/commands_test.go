package commands_test

import (
	"context"
	"testing"

	"go.trai.ch/relock/cmd/relock/commands"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.trai.ch/relock/internal/engine/lockgen"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T) (*commands.CLI, *mocks.MockConfigLoader, *mocks.MockManifestReader, *mocks.MockVertex, *mocks.MockTelemetry, *mocks.MockLogger) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockManifests := mocks.NewMockManifestReader(ctrl)
	mockLocator := mocks.NewMockModuleLocator(ctrl)
	mockStore := mocks.NewMockLockfileStore(ctrl)
	mockTelemetry := mocks.NewMockTelemetry(ctrl)
	mockVertex := mocks.NewMockVertex(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	generator := lockgen.NewGenerator(mockManifests, mockLocator, mockLogger)
	a := app.New(mockLoader, generator, mockStore, mockTelemetry, mockLogger)

	return commands.New(a), mockLoader, mockManifests, mockVertex, mockTelemetry, mockLogger
}

func TestGenerate_SkipsEmptyDirectory(t *testing.T) {
	cli, mockLoader, mockManifests, mockVertex, mockTelemetry, mockLogger := newCLI(t)

	mockLoader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)
	mockTelemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		Return(context.Background(), mockVertex)
	mockTelemetry.EXPECT().Close().Return(nil)
	mockManifests.EXPECT().ReadIfExists(gomock.Any()).Return(nil, nil)
	mockVertex.EXPECT().Complete(nil)
	mockLogger.EXPECT().Warn(gomock.Any())
	mockLogger.EXPECT().Info(gomock.Any())

	cli.SetArgs([]string{"generate", "some-dir"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	cli, _, _, _, _, _ := newCLI(t)

	cli.SetArgs([]string{"version"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRoot_Help(t *testing.T) {
	cli, _, _, _, _, _ := newCLI(t)

	cli.SetArgs([]string{"--help"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}

func TestGenerate_UnknownFlag(t *testing.T) {
	cli, _, _, _, _, _ := newCLI(t)

	cli.SetArgs([]string{"generate", "--no-such-flag"})

	if err := cli.Execute(context.Background()); err == nil {
		t.Error("expected error for unknown flag, got nil")
	}
}
