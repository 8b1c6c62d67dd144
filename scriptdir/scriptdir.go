package scriptdir

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// State состояние каталога назначения перед экспортом.
type State int

const (
	NotExists State = iota
	ExistsUnconfirmed
	ExistsConfirmed
)

func (s State) String() string {
	switch s {
	case NotExists:
		return "not exists"
	case ExistsUnconfirmed:
		return "exists, unconfirmed"
	case ExistsConfirmed:
		return "exists, confirmed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrAborted is returned when the user declines to replace the destination.
var ErrAborted = errors.New("export aborted")

// ErrNameCollision is returned when two objects of one run map to the same file.
var ErrNameCollision = errors.New("file name collision")

// Asker asks the user a yes/no question.
type Asker interface {
	AskYesNo(message string) (bool, error)
}

const (
	scriptExt = ".sql"
	dataExt   = ".tsv"

	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Dir is the destination tree of one export run.
type Dir struct {
	fs   afero.Fs
	path string

	// файлы, записанные после последней очистки
	written mapset.Set[string]
}

func New(fs afero.Fs, path string) *Dir {
	return &Dir{
		fs:      fs,
		path:    filepath.Clean(path),
		written: mapset.NewThreadUnsafeSet[string](),
	}
}

func (d *Dir) Path() string { return d.path }

// State checks the destination. A path that exists but is not a directory is an error.
func (d *Dir) State(force bool) (State, error) {
	stat, err := d.fs.Stat(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NotExists, nil
		}
		return NotExists, xerrors.Errorf("stat %q: %w", d.path, err)
	}
	if !stat.IsDir() {
		return NotExists, &os.PathError{
			Op:   "stat",
			Path: d.path,
			Err:  errors.New("path exists, but it is not a directory"),
		}
	}
	if force {
		return ExistsConfirmed, nil
	}
	return ExistsUnconfirmed, nil
}

// Confirm resolves the overwrite gate. Declining returns ErrAborted and leaves
// the destination untouched.
func (d *Dir) Confirm(force bool, asker Asker) (State, error) {
	state, err := d.State(force)
	if err != nil {
		return state, err
	}
	if state != ExistsUnconfirmed {
		return state, nil
	}

	ok, err := asker.AskYesNo(d.path + " already exists - do you want to replace it")
	if err != nil {
		return state, xerrors.Errorf("ask overwrite confirmation: %w", err)
	}
	if !ok {
		return state, ErrAborted
	}
	return ExistsConfirmed, nil
}

// Clear удаляет каталоги категорий. Остальное содержимое каталога не трогается.
func (d *Dir) Clear(categories []string) error {
	for _, category := range categories {
		if err := d.fs.RemoveAll(filepath.Join(d.path, category)); err != nil {
			return xerrors.Errorf("remove %q: %w", category, err)
		}
	}
	d.written.Clear()
	return nil
}

// WriteScript writes <category>/<name>.sql creating the category directory if needed.
func (d *Dir) WriteScript(category, name, script string) error {
	dir, err := d.mkdir(category)
	if err != nil {
		return err
	}
	path, err := d.claim(dir, name, scriptExt)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(d.fs, path, []byte(script), filePerm); err != nil {
		return xerrors.Errorf("write script %q: %w", path, err)
	}
	return nil
}

// CreateData creates <category>/<name>.tsv for table rows. The caller closes the file.
func (d *Dir) CreateData(category, name string) (io.WriteCloser, error) {
	dir, err := d.mkdir(category)
	if err != nil {
		return nil, err
	}
	path, err := d.claim(dir, name, dataExt)
	if err != nil {
		return nil, err
	}
	file, err := d.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, xerrors.Errorf("create data file %q: %w", path, err)
	}
	return file, nil
}

// claim резервирует путь файла. Повторная запись в один файл за запуск
// означает, что два объекта получили одно имя.
func (d *Dir) claim(dir, name, ext string) (string, error) {
	path := filepath.Join(dir, FileName(name)+ext)
	if !d.written.Add(path) {
		return "", xerrors.Errorf("%q: %w", path, ErrNameCollision)
	}
	return path, nil
}

func (d *Dir) mkdir(category string) (string, error) {
	dir := filepath.Join(d.path, category)
	if err := d.fs.MkdirAll(dir, dirPerm); err != nil {
		return "", xerrors.Errorf("create directory %q: %w", dir, err)
	}
	return dir, nil
}

var fileNameReplacer = strings.NewReplacer(
	"/", "_", `\`, "_", ":", "_", "*", "_",
	"?", "_", `"`, "_", "<", "_", ">", "_", "|", "_",
)

// FileName заменяет символы, недопустимые в именах файлов.
func FileName(name string) string {
	return fileNameReplacer.Replace(name)
}
