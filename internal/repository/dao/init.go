package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&Activity{},
		&EventDetails{},
		&MeetingDetails{},
		&FormationDetails{},
		&GeneralAssemblyDetails{},
		&Participant{},
		&LedgerEntry{},
	)
}

// DropTables removes every table InitTables creates. Used by integration tests.
func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&LedgerEntry{},
		&Participant{},
		&GeneralAssemblyDetails{},
		&FormationDetails{},
		&MeetingDetails{},
		&EventDetails{},
		&Activity{},
		&Member{},
	)
}
