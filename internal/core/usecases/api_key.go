package usecases

import (
	"fmt"
)

func (uc *videoUseCase) APIKey() (string, error) {
	key, err := uc.keys.LoadKey()
	if err != nil {
		uc.log.Error("Failed to load API key", err)
		return "", err
	}
	return key, nil
}

func (uc *videoUseCase) SaveAPIKey(key string) error {
	if err := uc.keys.SaveKey(key); err != nil {
		uc.log.Error("Failed to save API key", err)
		return fmt.Errorf("error while saving API key: %w", err)
	}
	uc.log.Info("API key saved")
	return nil
}

func (uc *videoUseCase) ClearAPIKey() error {
	if err := uc.keys.DeleteKey(); err != nil {
		uc.log.Error("Failed to remove API key", err)
		return fmt.Errorf("error while removing API key: %w", err)
	}
	uc.log.Info("API key removed")
	return nil
}
