// Package notifier delivers short text notifications to the lockd tray
// companion through its local webhook.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/logger"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

var (
	// ErrDisabled is returned when notifications are switched off in config.
	ErrDisabled = errors.New("notifications are disabled")
	// ErrTrayNotRunning is returned when no live tray process owns the lockfile.
	ErrTrayNotRunning = errors.New("lockd-tray is not running")
)

// Config selects the tray instance and how long notifications stay on screen.
type Config struct {
	Enabled        bool
	TrayIdentifier string
	Duration       time.Duration
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		TrayIdentifier: constants.TrayAppIdentifier,
		Duration:       constants.NotificationDurationMs * time.Millisecond,
	}
}

type Notifier struct {
	cfg    Config
	client *http.Client
}

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// TrayStatus describes the tray process found through its lockfile.
type TrayStatus struct {
	ConfigDir string
	Port      int
	PID       int
	secret    string
}

func New(cfg Config) *Notifier {
	if cfg.TrayIdentifier == "" {
		cfg.TrayIdentifier = constants.TrayAppIdentifier
	}
	if cfg.Duration <= 0 {
		cfg.Duration = constants.NotificationDurationMs * time.Millisecond
	}
	return &Notifier{
		cfg:    cfg,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify sends text to the tray companion.
func (n *Notifier) Notify(text string) error {
	return n.NotifyContext(context.Background(), text)
}

func (n *Notifier) NotifyContext(ctx context.Context, text string) error {
	if !n.cfg.Enabled {
		return ErrDisabled
	}

	status, err := n.Status()
	if err != nil {
		return err
	}

	payload := WebhookPayload{
		Text:       text,
		DurationMs: uint32(n.cfg.Duration / time.Millisecond),
	}
	if err := n.send(ctx, strconv.Itoa(status.Port), status.secret, payload); err != nil {
		return err
	}
	logger.Debug("notification delivered", "port", status.Port, "text", text)
	return nil
}

// Status locates and validates the running tray process.
func (n *Notifier) Status() (TrayStatus, error) {
	dir, err := TrayConfigDir(n.cfg.TrayIdentifier)
	if err != nil {
		return TrayStatus{}, err
	}
	status, err := findAndValidateTrayProcess(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return TrayStatus{}, err
	}
	status.ConfigDir = dir
	return status, nil
}

// TrayConfigDir returns the directory holding the tray lockfile. The tray's
// settings.json may point the lockfile somewhere else.
func TrayConfigDir(identifier string) (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	trayConfigDir := filepath.Join(configDir, identifier)

	data, err := os.ReadFile(filepath.Join(trayConfigDir, "settings.json"))
	if err != nil {
		return trayConfigDir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &store); err != nil {
		logger.Warn("ignoring unreadable tray settings", "path", trayConfigDir, "error", err)
		return trayConfigDir, nil
	}
	if dir := store.Settings.LockfileDir; dir != nil && *dir != "" {
		return *dir, nil
	}
	return trayConfigDir, nil
}

// parseLockfile reads the "port|pid|secret" record the tray writes on startup.
func parseLockfile(content string) (TrayStatus, error) {
	parts := strings.Split(strings.TrimSpace(content), "|")
	if len(parts) != 3 {
		return TrayStatus{}, errors.New("lockfile is malformed")
	}

	if strings.TrimSpace(parts[0]) == "" {
		return TrayStatus{}, errors.New("port in lockfile is empty")
	}
	port, err := strconv.Atoi(parts[0])
	if err != nil {
		return TrayStatus{}, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return TrayStatus{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return TrayStatus{}, errors.New("invalid process ID in lockfile")
	}

	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return TrayStatus{}, errors.New("secret in lockfile is empty")
	}
	return TrayStatus{Port: port, PID: pid, secret: secret}, nil
}

func findAndValidateTrayProcess(lockfilePath string) (TrayStatus, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return TrayStatus{}, ErrTrayNotRunning
	}

	status, err := parseLockfile(string(content))
	if err != nil {
		return TrayStatus{}, err
	}

	process, err := findProcessFunc(status.PID)
	if err != nil || process == nil {
		return TrayStatus{}, fmt.Errorf("%w (pid %d)", ErrTrayNotRunning, status.PID)
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return TrayStatus{}, fmt.Errorf("process with PID %d is not %s (is %s)",
			status.PID, constants.TrayExecutablePrefix, process.Executable())
	}
	return status, nil
}

func (n *Notifier) send(ctx context.Context, port, secret string, payload WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("http://127.0.0.1:%s", port)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Lockd-Secret", secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
