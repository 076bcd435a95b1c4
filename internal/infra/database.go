package infra

import (
	"fmt"

	"inmobiliaria/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then seeds the reference catalogs the business
// rules depend on (estados de venta y lote, roles, monedas).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies AutoMigrate plus catalog seeding. Also used by the
// integration tests against a disposable container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.TipoDocumento{},
		&model.TipoLote{},
		&model.EstadoLote{},
		&model.EstadoVenta{},
		&model.Moneda{},
		&model.Rol{},
		&model.Departamento{},
		&model.Provincia{},
		&model.Distrito{},
		&model.Cliente{},
		&model.Proyecto{},
		&model.Lote{},
		&model.Venta{},
		&model.Abono{},
		&model.Usuario{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return SeedCatalogos(db)
}

// SeedCatalogos inserts the catalog rows the lifecycle rules reference by
// name. FirstOrCreate keyed on nombre makes re-runs a no-op.
func SeedCatalogos(db *gorm.DB) error {
	seedBase := func(dst interface{ Base() *model.CatalogoBase }, nombre, descripcion string) error {
		base := dst.Base()
		base.Nombre = nombre
		base.Descripcion = descripcion
		return db.Where("nombre = ?", nombre).FirstOrCreate(dst).Error
	}

	estadosVenta := []struct{ nombre, descripcion string }{
		{model.EstadoVentaPendiente, "Venta en curso con saldo por cobrar"},
		{model.EstadoVentaConfirmada, "Venta cerrada con contrato firmado"},
		{model.EstadoVentaCancelada, "Venta anulada, lote liberado"},
	}
	for _, e := range estadosVenta {
		if err := seedBase(&model.EstadoVenta{}, e.nombre, e.descripcion); err != nil {
			return err
		}
	}

	estadosLote := []struct{ nombre, descripcion string }{
		{model.EstadoLoteDisponible, "Lote ofertable"},
		{model.EstadoLoteReservado, "Lote comprometido en una venta en curso"},
		{model.EstadoLoteVendido, "Lote con contrato firmado"},
	}
	for _, e := range estadosLote {
		if err := seedBase(&model.EstadoLote{}, e.nombre, e.descripcion); err != nil {
			return err
		}
	}

	roles := []string{model.RolPropietario, model.RolAdmin, model.RolVendedor}
	for _, r := range roles {
		if err := seedBase(&model.Rol{}, r, ""); err != nil {
			return err
		}
	}

	monedas := []struct{ nombre, simbolo string }{
		{"Sol", "S/"},
		{"Dólar", "$"},
	}
	for _, m := range monedas {
		moneda := &model.Moneda{Simbolo: m.simbolo}
		if err := seedBase(moneda, m.nombre, ""); err != nil {
			return err
		}
	}

	tiposDocumento := []string{"DNI", "RUC", "Carnet de Extranjería", "Pasaporte"}
	for _, t := range tiposDocumento {
		if err := seedBase(&model.TipoDocumento{}, t, ""); err != nil {
			return err
		}
	}

	tiposLote := []string{"Residencial", "Comercial"}
	for _, t := range tiposLote {
		if err := seedBase(&model.TipoLote{}, t, ""); err != nil {
			return err
		}
	}

	return seedGeografia(db)
}

// seedGeografia carga un ubigeo mínimo para los selectores en cascada.
// Instalaciones reales reemplazan esto con la carga completa de ubigeo.
func seedGeografia(db *gorm.DB) error {
	ubigeo := map[string]map[string][]string{
		"Lima": {
			"Lima":   {"Carabayllo", "Puente Piedra", "Comas", "San Martín de Porres"},
			"Huaral": {"Chancay", "Huaral"},
			"Cañete": {"San Vicente de Cañete", "Asia"},
		},
		"Ica": {
			"Ica":     {"Ica", "Salas"},
			"Chincha": {"Chincha Alta", "Grocio Prado"},
		},
	}

	for depNombre, provincias := range ubigeo {
		dep := model.Departamento{Nombre: depNombre}
		if err := db.Where("nombre = ?", depNombre).FirstOrCreate(&dep).Error; err != nil {
			return err
		}
		for provNombre, distritos := range provincias {
			prov := model.Provincia{Nombre: provNombre, DepartamentoID: dep.ID}
			if err := db.Where("nombre = ? AND departamento_id = ?", provNombre, dep.ID).
				FirstOrCreate(&prov).Error; err != nil {
				return err
			}
			for _, distNombre := range distritos {
				dist := model.Distrito{Nombre: distNombre, ProvinciaID: prov.ID}
				if err := db.Where("nombre = ? AND provincia_id = ?", distNombre, prov.ID).
					FirstOrCreate(&dist).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}
