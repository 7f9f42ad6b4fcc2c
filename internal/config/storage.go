package config

type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"
	StorageFile     StorageDriver = "file"
	StorageRedis    StorageDriver = "redis"
	StoragePostgres StorageDriver = "postgres"
)

type Storage struct {
	Driver  StorageDriver `env:"STORAGE_DRIVER" envDefault:"memory"`
	Key     string        `env:"STORAGE_KEY" envDefault:"_BASKET_"`
	FileDir string        `env:"STORAGE_FILE_DIR" envDefault:"./data"`
}
