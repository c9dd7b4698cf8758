package storage

import "os"

// DatabaseSizeBytes returns the on-disk size of the SQLite database at path,
// including its -wal and -shm companions. Missing files contribute 0.
func DatabaseSizeBytes(path string) (int64, error) {
	if path == "" {
		return 0, nil
	}
	var total int64
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return 0, err
		}
		if !info.IsDir() {
			total += info.Size()
		}
	}
	return total, nil
}
