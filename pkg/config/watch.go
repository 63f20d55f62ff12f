package config

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch watches the config file and invokes onChange with a freshly
// loaded configuration whenever the file is written or recreated.
// The returned stop function releases the watcher.
func Watch(path string, log *zap.Logger, onChange func(*Config)) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					cfg, err := Load()
					if err != nil {
						log.Error("config reload failed", zap.String("path", path), zap.Error(err))
						continue
					}
					log.Info("config file changed, reloading", zap.String("path", path))
					onChange(cfg)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("config watcher error", zap.Error(err))
			}
		}
	}()

	return watcher.Close, nil
}
