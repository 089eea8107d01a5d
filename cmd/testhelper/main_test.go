package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocore"
)

func testConfig(stdin string) (Config, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return Config{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(string) string { return "" },
	}, &stdout, &stderr
}

// call runs one command with req as stdin and decodes the response into out.
func call(t *testing.T, command string, req any, out any, flags ...string) error {
	t.Helper()
	in, err := json.Marshal(req)
	require.NoError(t, err)
	cfg, stdout, _ := testConfig(string(in))
	args := append([]string{"testhelper", command}, flags...)
	if err := run(args, cfg); err != nil {
		return err
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), out), "stdout: %s", stdout.String())
	return nil
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Stdin != os.Stdin {
		t.Error("DefaultConfig().Stdin should be os.Stdin")
	}
	if cfg.Stdout != os.Stdout {
		t.Error("DefaultConfig().Stdout should be os.Stdout")
	}
	if cfg.Stderr != os.Stderr {
		t.Error("DefaultConfig().Stderr should be os.Stderr")
	}
	if cfg.EnvFile != ".env" {
		t.Errorf("DefaultConfig().EnvFile = %q, want .env", cfg.EnvFile)
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CRYPTOCORE_LOG_LEVEL=debug\nCRYPTOCORE_PRIME_LEVEL=2\n"), 0o600))

	tests := []struct {
		name    string
		env     map[string]string
		file    string
		want    settings
		wantErr bool
	}{
		{
			name: "defaults",
			want: settings{logLevel: "info", primeLevel: 1},
		},
		{
			name: "dotenv file",
			file: envFile,
			want: settings{logLevel: "debug", primeLevel: 2},
		},
		{
			name: "environment wins over file",
			file: envFile,
			env:  map[string]string{"CRYPTOCORE_PRIME_LEVEL": "0", "CRYPTOCORE_HW_AES": "true"},
			want: settings{logLevel: "debug", primeLevel: 0, hwAES: true},
		},
		{
			name: "missing file ignored",
			file: filepath.Join(dir, "absent.env"),
			want: settings{logLevel: "info", primeLevel: 1},
		},
		{
			name:    "bad level",
			env:     map[string]string{"CRYPTOCORE_PRIME_LEVEL": "high"},
			wantErr: true,
		},
		{
			name:    "bad bool",
			env:     map[string]string{"CRYPTOCORE_HW_AES": "maybe"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Getenv:  func(k string) string { return tt.env[k] },
				EnvFile: tt.file,
			}
			got, err := loadSettings(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger("warn", &buf)
	require.NoError(t, err)
	log.Info("dropped")
	log.Warn("kept")
	require.NoError(t, log.Sync())
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)

	_, err = newLogger("loud", &buf)
	assert.Error(t, err)
}

func TestPowmod(t *testing.T) {
	var resp resultResponse
	require.NoError(t, call(t, "powmod", powmodRequest{Base: "4", Exp: "d", Mod: "1f1"}, &resp))
	assert.Equal(t, "01BD", resp.Result) // 4^13 mod 497 = 445

	err := call(t, "powmod", powmodRequest{Base: "2", Exp: "-1", Mod: "7"}, &resp)
	assert.True(t, errors.Is(err, cryptocore.ErrInvalidArgument), "negative exponent: %v", err)
}

func TestDivmod(t *testing.T) {
	var resp divmodResponse
	require.NoError(t, call(t, "divmod", divmodRequest{X: "-11", Y: "5"}, &resp))
	// -17 = -4*5 + 3
	assert.Equal(t, "-04", resp.Q)
	assert.Equal(t, "03", resp.R)

	err := call(t, "divmod", divmodRequest{X: "1", Y: "0"}, &resp)
	assert.True(t, errors.Is(err, cryptocore.ErrDivideByZero))
}

func TestGCDAndInverse(t *testing.T) {
	var resp resultResponse
	require.NoError(t, call(t, "gcd", pairRequest{A: "30", B: "24"}, &resp))
	assert.Equal(t, "0C", resp.Result)

	require.NoError(t, call(t, "inverse", inverseRequest{N: "3", Mod: "400"}, &resp))
	assert.Equal(t, "02AB", resp.Result) // 683

	require.NoError(t, call(t, "inverse", inverseRequest{N: "2", Mod: "400"}, &resp))
	assert.Equal(t, "0", resp.Result)
}

func TestIsPrimeAndRandomPrime(t *testing.T) {
	var ip isPrimeResponse
	require.NoError(t, call(t, "is-prime", isPrimeRequest{N: "FFFFFFFB"}, &ip))
	assert.True(t, ip.Prime)
	require.NoError(t, call(t, "is-prime", isPrimeRequest{N: "231"}, &ip)) // 561
	assert.False(t, ip.Prime)

	var rp randomPrimeResponse
	require.NoError(t, call(t, "random-prime", randomPrimeRequest{Bits: 96}, &rp, "--prime-level", "2"))
	p, ok := new(big.Int).SetString(rp.Prime, 16)
	require.True(t, ok)
	assert.Equal(t, 96, p.BitLen())
	assert.True(t, p.ProbablyPrime(20))
}

func TestSealOpen(t *testing.T) {
	// GCM test case 2: zero key, zero nonce, one zero block.
	req := aeadRequest{
		Algorithm: "AES-128/GCM",
		Key:       strings.Repeat("00", 16),
		Nonce:     strings.Repeat("00", 12),
		Plaintext: strings.Repeat("00", 16),
	}
	var sealed sealResponse
	require.NoError(t, call(t, "seal", req, &sealed))
	assert.Equal(t, "0388dace60b6a392f328c2b971b2fe78ab6e47d42cec13bdf53a67b21257bddf", sealed.Ciphertext)

	req.Plaintext = ""
	req.Ciphertext = sealed.Ciphertext
	var opened openResponse
	require.NoError(t, call(t, "open", req, &opened, "--hw-aes"))
	assert.Equal(t, strings.Repeat("00", 16), opened.Plaintext)

	req.Ciphertext = "1" + sealed.Ciphertext[1:]
	err := call(t, "open", req, &opened)
	assert.True(t, errors.Is(err, cryptocore.ErrIntegrityFailure), "tampered: %v", err)

	req.Algorithm = "AES-128/OCB"
	err = call(t, "open", req, &opened)
	assert.True(t, errors.Is(err, cryptocore.ErrInvalidArgument))
}

func TestEnvelopeCommands(t *testing.T) {
	var keys keygenResponse
	require.NoError(t, call(t, "keygen", keygenRequest{}, &keys))

	var payload json.RawMessage
	require.NoError(t, call(t, "envelope-seal", envelopeSealRequest{
		Recipient:  keys.PublicKey,
		SigningKey: keys.SigningKey,
		Algorithm:  "Serpent/EAX",
		Plaintext:  "68656c6c6f",
		AAD:        "00",
	}, &payload))

	openReq := map[string]any{
		"payload":    payload,
		"secret_key": keys.SecretKey,
		"signer":     keys.SigningPublicKey,
	}
	var opened openResponse
	require.NoError(t, call(t, "envelope-open", openReq, &opened))
	assert.Equal(t, "68656c6c6f", opened.Plaintext)

	var other keygenResponse
	require.NoError(t, call(t, "keygen", keygenRequest{}, &other))
	openReq["signer"] = other.SigningPublicKey
	assert.Error(t, call(t, "envelope-open", openReq, &opened))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
	}{
		{"unknown command", []string{"testhelper", "frobnicate"}, "{}"},
		{"malformed json", []string{"testhelper", "gcd"}, "{"},
		{"unknown field", []string{"testhelper", "gcd"}, `{"a":"1","b":"2","c":"3"}`},
		{"bad hex integer", []string{"testhelper", "gcd"}, `{"a":"xyz","b":"2"}`},
		{"bad log level", []string{"testhelper", "gcd", "--log-level", "loud"}, `{"a":"1","b":"2"}`},
		{"bad prime level", []string{"testhelper", "is-prime", "--prime-level", "5"}, `{"n":"7"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, _ := testConfig(tt.stdin)
			if err := run(tt.args, cfg); err == nil {
				t.Errorf("run(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func TestLogsCarryNoSecrets(t *testing.T) {
	req := `{"algorithm":"AES-256/GCM","key":"` + strings.Repeat("ab", 32) + `","nonce":"` + strings.Repeat("cd", 12) + `","ad":"","plaintext":"5345435245540a"}`
	cfg, _, stderr := testConfig(req)
	require.NoError(t, run([]string{"testhelper", "seal", "--log-level", "debug"}, cfg))

	logs := stderr.String()
	assert.Contains(t, logs, `"command":"seal"`)
	assert.NotContains(t, logs, strings.Repeat("ab", 32))
	assert.NotContains(t, logs, "5345435245540a")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  int
	}{
		{"success", `{"a":"1e","b":"18"}`, []string{"testhelper", "gcd"}, exitOK},
		{"malformed request", `{"a":`, []string{"testhelper", "gcd"}, exitBadRequest},
		{"unknown field", `{"z":"1"}`, []string{"testhelper", "gcd"}, exitBadRequest},
		{"rejected operands", `{"x":"1","y":"0"}`, []string{"testhelper", "divmod"}, exitFailure},
		{"unknown command", `{}`, []string{"testhelper", "frobnicate"}, exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, stderr := testConfig(tt.stdin)
			got := exitCode(run(tt.args, cfg), stderr)
			assert.Equal(t, tt.want, got)
			if tt.want != exitOK {
				assert.Contains(t, stderr.String(), "testhelper: ")
			}
		})
	}
}
