package main

import "testing"

func TestMigrateCmd_Subcommands(t *testing.T) {
	cmd := migrateCmd()
	want := map[string]bool{"up": false, "status": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("migrate subcommand %q not registered", name)
		}
	}
}

func TestMigrateCmd_DirFlagDefault(t *testing.T) {
	cmd := migrateCmd()
	for _, sub := range cmd.Commands() {
		flag := sub.Flags().Lookup("dir")
		if flag == nil {
			t.Errorf("%s: missing --dir flag", sub.Name())
			continue
		}
		if flag.DefValue != "./migrations" {
			t.Errorf("%s: expected default ./migrations, got %s", sub.Name(), flag.DefValue)
		}
	}
}

func TestServeCmd(t *testing.T) {
	cmd := serveCmd()
	if cmd.Use != "serve" {
		t.Errorf("expected use serve, got %s", cmd.Use)
	}
	if cmd.RunE == nil {
		t.Error("serve command must have a run function")
	}
}
