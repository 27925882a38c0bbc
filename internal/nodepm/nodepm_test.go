package nodepm

import "testing"

func TestDetectUserAgent(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{"npm agent", "npm/10.5.0 node/v20.12.0 linux x64 workspaces/false", "npm"},
		{"yarn agent", "yarn/1.22.22 npm/? node/v20.12.0 linux x64", "yarn"},
		{"pnpm agent", "pnpm/9.1.0 npm/? node/v20.12.0 linux x64", "pnpm"},
		{"empty agent defaults to npm", "", "npm"},
		{"unknown agent defaults to npm", "bun/1.1.0", "npm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectUserAgent(tt.userAgent).Name(); got != tt.want {
				t.Errorf("DetectUserAgent(%q).Name() = %q, want %q", tt.userAgent, got, tt.want)
			}
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"npm", "yarn", "pnpm"} {
		if got := ByName(name).Name(); got != name {
			t.Errorf("ByName(%q).Name() = %q", name, got)
		}
	}
	if got := ByName("bun").Name(); got != "npm" {
		t.Errorf("ByName(unknown).Name() = %q, want npm", got)
	}
}

func TestCommandStrings(t *testing.T) {
	tests := []struct {
		manager string
		build   func(pm PackageManager) string
		want    string
	}{
		{"npm", func(pm PackageManager) string { return pm.Init() }, "npm init -y"},
		{"npm", func(pm PackageManager) string { return pm.InstallDev("@playwright/test", "dotenv") }, "npm install --save-dev @playwright/test dotenv"},
		{"npm", func(pm PackageManager) string { return pm.InstallAll() }, "npm ci"},
		{"npm", func(pm PackageManager) string { return pm.RunScript("test-ct") }, "npm run test-ct"},
		{"npm", func(pm PackageManager) string { return pm.Exec("playwright install") }, "npx playwright install"},
		{"yarn", func(pm PackageManager) string { return pm.Init() }, "yarn init -y"},
		{"yarn", func(pm PackageManager) string { return pm.InstallDev("@types/node") }, "yarn add --dev @types/node"},
		{"yarn", func(pm PackageManager) string { return pm.InstallAll() }, "yarn"},
		{"yarn", func(pm PackageManager) string { return pm.Exec("playwright test") }, "yarn playwright test"},
		{"pnpm", func(pm PackageManager) string { return pm.Init() }, "pnpm init"},
		{"pnpm", func(pm PackageManager) string { return pm.InstallDev("@playwright/experimental-ct-react@beta") }, "pnpm add --save-dev @playwright/experimental-ct-react@beta"},
		{"pnpm", func(pm PackageManager) string { return pm.RunScript("test") }, "pnpm run test"},
		{"pnpm", func(pm PackageManager) string { return pm.Exec("playwright install --with-deps") }, "pnpm exec playwright install --with-deps"},
	}

	for _, tt := range tests {
		t.Run(tt.manager+"/"+tt.want, func(t *testing.T) {
			if got := tt.build(ByName(tt.manager)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
