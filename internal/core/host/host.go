// Package host builds RuleContext snapshots from live host state.
//
// The rule engine consumes one immutable snapshot per evaluation pass; this
// package is the single place that touches the environment to produce it.
// Provider implementations may block (they query host state), which is why
// Snapshot takes a context; once a snapshot exists, evaluation is pure.
package host

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/solatis/noticegate/internal/types"
)

// Snapshot bundles the running extension's identity with the RuleContext the
// engine evaluates against. RuleContext fields flatten into the same JSON
// object for file-based snapshots.
type Snapshot struct {
	ExtensionID string `json:"extensionId"`
	types.RuleContext
}

// Provider produces context snapshots from some source of host state.
// Implementations may block; the returned snapshot is immutable.
type Provider interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Environment variable names read by EnvProvider. Auth lists are
// comma-delimited in the environment and parsed into lists here; the engine
// only ever sees parsed values.
const (
	EnvExtensionID         = "NG_EXTENSION_ID"
	EnvIDEVersion          = "NG_IDE_VERSION"
	EnvExtensionVersion    = "NG_EXTENSION_VERSION"
	EnvOS                  = "NG_OS"
	EnvComputeEnv          = "NG_COMPUTE_ENV"
	EnvAuthTypes           = "NG_AUTH_TYPES"
	EnvAuthRegion          = "NG_AUTH_REGION"
	EnvAuthState           = "NG_AUTH_STATE"
	EnvAuthScopes          = "NG_AUTH_SCOPES"
	EnvInstalledExtensions = "NG_INSTALLED_EXTENSIONS"
	EnvActiveExtensions    = "NG_ACTIVE_EXTENSIONS"
)

// DefaultAuthState is reported when the auth subsystem exposes no status.
const DefaultAuthState = "disconnected"

// DefaultComputeEnv is reported when no compute environment is configured.
const DefaultComputeEnv = "local"

// EnvProvider reads host facts from the process environment.
type EnvProvider struct{}

// NewEnvProvider creates a provider backed by the process environment.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

// Snapshot builds a context snapshot from NG_* environment variables.
// OS defaults to runtime.GOOS, compute env to "local", auth state to
// "disconnected". Versions and the extension id are required.
func (p *EnvProvider) Snapshot(_ context.Context) (Snapshot, error) {
	snap := Snapshot{
		ExtensionID: os.Getenv(EnvExtensionID),
		RuleContext: types.RuleContext{
			IDEVersion:          os.Getenv(EnvIDEVersion),
			ExtensionVersion:    os.Getenv(EnvExtensionVersion),
			OS:                  envOrDefault(EnvOS, runtime.GOOS),
			ComputeEnv:          envOrDefault(EnvComputeEnv, DefaultComputeEnv),
			AuthTypes:           SplitList(os.Getenv(EnvAuthTypes)),
			AuthRegions:         SplitList(os.Getenv(EnvAuthRegion)),
			AuthStates:          []string{envOrDefault(EnvAuthState, DefaultAuthState)},
			AuthScopes:          SplitList(os.Getenv(EnvAuthScopes)),
			InstalledExtensions: SplitList(os.Getenv(EnvInstalledExtensions)),
			ActiveExtensions:    SplitList(os.Getenv(EnvActiveExtensions)),
		},
	}
	if err := validateSnapshot(&snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// envOrDefault returns the variable's value, or fallback when unset or blank.
func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// SplitList parses a comma-delimited value into a list.
// Entries are trimmed; empty entries are dropped; "" yields an empty list.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// validateSnapshot enforces the context contract: required identity and
// versions, exactly one auth state, at most one region.
func validateSnapshot(snap *Snapshot) error {
	if snap.ExtensionID == "" {
		return fmt.Errorf("extension id is required")
	}
	if snap.IDEVersion == "" {
		return fmt.Errorf("ide version is required")
	}
	if snap.ExtensionVersion == "" {
		return fmt.Errorf("extension version is required")
	}
	if len(snap.AuthStates) != 1 {
		return fmt.Errorf("%w, got %d", types.ErrInvalidAuthState, len(snap.AuthStates))
	}
	if len(snap.AuthRegions) > 1 {
		return fmt.Errorf("at most one auth region allowed, got %d", len(snap.AuthRegions))
	}
	return nil
}
