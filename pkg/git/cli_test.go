package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webstart/pkg/testutil"
)

func setupTemplateRepo(t *testing.T) string {
	tmpDir := t.TempDir()

	cmd := exec.Command("git", "init")
	cmd.Dir = tmpDir
	require.NoError(t, cmd.Run(), "failed to init git repo")

	cmd = exec.Command("git", "config", "user.email", "test@example.com")
	cmd.Dir = tmpDir
	cmd.Run()

	cmd = exec.Command("git", "config", "user.name", "Test User")
	cmd.Dir = tmpDir
	cmd.Run()

	readmePath := filepath.Join(tmpDir, "README.md")
	require.NoError(t, os.WriteFile(readmePath, []byte("# webstart-project-id\n"), 0644))

	cmd = exec.Command("git", "add", ".")
	cmd.Dir = tmpDir
	require.NoError(t, cmd.Run(), "failed to add files")

	cmd = exec.Command("git", "commit", "-m", "Initial commit")
	cmd.Dir = tmpDir
	require.NoError(t, cmd.Run(), "failed to commit")

	return tmpDir
}

func TestClone(t *testing.T) {
	repoDir := setupTemplateRepo(t)
	targetDir := filepath.Join(t.TempDir(), testutil.RandomProjectName())

	cli := NewCLI()
	err := cli.Clone(context.Background(), repoDir, targetDir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(targetDir, "README.md"))
	assert.DirExists(t, filepath.Join(targetDir, ".git"))
}

func TestClone_BadSource(t *testing.T) {
	targetDir := filepath.Join(t.TempDir(), "cloned")

	cli := NewCLI()
	err := cli.Clone(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"), targetDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "git clone failed")
}

func TestConfigValue(t *testing.T) {
	home := t.TempDir()
	gitconfig := "[user]\n\tname = Config User\n\temail = config@example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), []byte(gitconfig), 0644))

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	cli := NewCLI()

	name, err := cli.ConfigValue(context.Background(), "user.name")
	require.NoError(t, err)
	assert.Equal(t, "Config User", name)

	email, err := cli.ConfigValue(context.Background(), "user.email")
	require.NoError(t, err)
	assert.Equal(t, "config@example.com", email)
}

func TestConfigValue_MissingKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	cli := NewCLI()
	_, err := cli.ConfigValue(context.Background(), "user.name")
	assert.Error(t, err)
}
