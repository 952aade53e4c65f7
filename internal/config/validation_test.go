package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Defaults(t *testing.T) {
	t.Run("Empty Project Name Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Defaults.ProjectName = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "project_name")
	})

	t.Run("Unknown Package Manager Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Defaults.PackageManager = "bower"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "package_manager")
	})

	t.Run("Unknown Framework Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Defaults.Framework = "angular"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "framework")
	})
}

func TestValidate_Output(t *testing.T) {
	t.Run("Unknown Layout Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Output.Layout = "hexagonal"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "layout")
	})

	t.Run("Flat Layout Passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Output.Layout = "flat"
		err := cfg.Validate()
		assert.NoError(t, err)
	})
}

func TestValidate_MultipleErrors_AllReported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.PackageManager = "bower"
	cfg.Defaults.Framework = "angular"

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "package_manager")
	assert.Contains(t, err.Error(), "framework")
}
