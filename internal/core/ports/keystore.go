package ports

type KeyStorePort interface {
	LoadKey() (string, error)
	SaveKey(key string) error
	DeleteKey() error
}
