package base

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var datadir string

func SetDatadir(_datadir string) {
	if datadir == _datadir {
		return
	}

	if datadir != "" {
		panic(fmt.Errorf("double-setting datadir! was %q, new %q", datadir, _datadir))
	}

	datadir = _datadir
}

func GetDataDir() string {
	return datadir
}

func LoadJson(path string, target interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	err = json.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("couldn't parse %q: %w", path, err)
	}
	return nil
}
