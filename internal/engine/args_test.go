package engine

import (
	"reflect"
	"testing"

	"github.com/shaiso/Conveyor/internal/domain"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name   string
		params []domain.Param
		want   []string
	}{
		{
			name:   "bool true emits flag only",
			params: []domain.Param{{Name: "verbose", Value: domain.BoolValue(true)}},
			want:   []string{"--verbose"},
		},
		{
			name:   "bool false emits nothing",
			params: []domain.Param{{Name: "verbose", Value: domain.BoolValue(false)}},
			want:   []string{},
		},
		{
			name:   "scalar emits flag and value",
			params: []domain.Param{{Name: "min_value", Value: domain.ScalarValue("10.5")}},
			want:   []string{"--min-value", "10.5"},
		},
		{
			name:   "sequence emits flag once then elements",
			params: []domain.Param{{Name: "tags", Value: domain.ListValue([]string{"a", "b"})}},
			want:   []string{"--tags", "a", "b"},
		},
		{
			name:   "double dash key is not re-prefixed",
			params: []domain.Param{{Name: "--verbose", Value: domain.BoolValue(true)}},
			want:   []string{"--verbose"},
		},
		{
			name: "underscores become hyphens",
			params: []domain.Param{
				{Name: "input_file_path", Value: domain.ScalarValue("data.csv")},
			},
			want: []string{"--input-file-path", "data.csv"},
		},
		{
			name: "order follows parameter order",
			params: []domain.Param{
				{Name: "input", Value: domain.ScalarValue("a.csv")},
				{Name: "dry_run", Value: domain.BoolValue(false)},
				{Name: "tags", Value: domain.ListValue([]string{"x"})},
				{Name: "output", Value: domain.ScalarValue("b.csv")},
			},
			want: []string{"--input", "a.csv", "--tags", "x", "--output", "b.csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildArgs(tt.params)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildArgs_Deterministic(t *testing.T) {
	params := []domain.Param{
		{Name: "input", Value: domain.ScalarValue("a.csv")},
		{Name: "tags", Value: domain.ListValue([]string{"a", "b", "c"})},
		{Name: "verbose", Value: domain.BoolValue(true)},
	}

	first := BuildArgs(params)
	for i := 0; i < 100; i++ {
		if got := BuildArgs(params); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced different argv: %v vs %v", i, got, first)
		}
	}
}

func TestFlagName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"verbose", "--verbose"},
		{"min_value", "--min-value"},
		{"a_b_c", "--a-b-c"},
		{"--already-flag", "--already-flag"},
		{"--keep_underscores", "--keep_underscores"},
	}

	for _, tt := range tests {
		if got := FlagName(tt.key); got != tt.want {
			t.Errorf("FlagName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestCommandLine(t *testing.T) {
	step := domain.Step{
		DisplayName: "load",
		Executable:  "src/loader.py",
		Params: []domain.Param{
			{Name: "limit", Value: domain.ScalarValue("100")},
		},
	}

	withInterp := CommandLine("python", step)
	want := []string{"python", "src/loader.py", "--limit", "100"}
	if !reflect.DeepEqual(withInterp, want) {
		t.Errorf("CommandLine with interpreter = %v, want %v", withInterp, want)
	}

	direct := CommandLine("", step)
	want = []string{"src/loader.py", "--limit", "100"}
	if !reflect.DeepEqual(direct, want) {
		t.Errorf("CommandLine without interpreter = %v, want %v", direct, want)
	}
}
