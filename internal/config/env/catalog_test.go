package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validCatalog = `
machines:
  - name: "アイムジャグラーEX"
    replay: 7.298
    cherry: 35.62
    bell: 1092.27
    piero: 1092.27
    big_payout: 239.25
    reg_payout: 95.25
    cherry_payout: 2
    bell_payout: 14
    piero_payout: 10
  - name: "マイジャグラーV"
    replay: 7.298
    cherry: 38.1
    bell: 1092.27
    piero: 1092.27
    big_payout: 239.25
    reg_payout: 95.25
    cherry_payout: 2
    bell_payout: 14
    piero_payout: 10
strategies:
  - name: "フル攻略"
    cherry: 1
    bell: 1
    piero: 1
  - name: "フリー打ち"
    cherry: 0.33
    bell: 0
    piero: 0
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewCatalogConfigFromYAML(t *testing.T) {
	cfg, err := NewCatalogConfigFromYAML(writeCatalog(t, validCatalog))
	if err != nil {
		t.Fatalf("NewCatalogConfigFromYAML: %v", err)
	}

	machines := cfg.Machines()
	if len(machines) != 2 {
		t.Fatalf("got %d machines, want 2", len(machines))
	}
	// Порядок файла сохраняется
	if machines[0].Name != "アイムジャグラーEX" || machines[1].Name != "マイジャグラーV" {
		t.Errorf("machine order broken: %q, %q", machines[0].Name, machines[1].Name)
	}
	if machines[0].ReplayRate != 7.298 || machines[0].BigPayout != 239.25 {
		t.Errorf("machine[0] = %+v", machines[0])
	}

	strategies := cfg.Strategies()
	if len(strategies) != 2 {
		t.Fatalf("got %d strategies, want 2", len(strategies))
	}
	if strategies[1].Cherry != 0.33 {
		t.Errorf("strategies[1].Cherry = %v", strategies[1].Cherry)
	}
}

func TestNewCatalogConfigFromYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing file is an error",
			content: "",
			wantErr: "failed to read catalog",
		},
		{
			name: "no machines",
			content: `
strategies:
  - name: "フル攻略"
    cherry: 1
`,
			wantErr: "no machines",
		},
		{
			name: "no strategies",
			content: `
machines:
  - name: "テスト"
    replay: 7.3
    cherry: 36
    bell: 1024
    piero: 1024
    big_payout: 240
    reg_payout: 96
`,
			wantErr: "no strategies",
		},
		{
			name: "denominator below one",
			content: `
machines:
  - name: "テスト"
    replay: 0.5
    cherry: 36
    bell: 1024
    piero: 1024
    big_payout: 240
    reg_payout: 96
strategies:
  - name: "フル攻略"
    cherry: 1
`,
			wantErr: "denominator",
		},
		{
			name: "capture out of range",
			content: `
machines:
  - name: "テスト"
    replay: 7.3
    cherry: 36
    bell: 1024
    piero: 1024
    big_payout: 240
    reg_payout: 96
strategies:
  - name: "二倍取り"
    cherry: 2
`,
			wantErr: "out of [0,1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.content != "" {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			_, err := NewCatalogConfigFromYAML(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
