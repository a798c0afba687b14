package catalog

// Battery is one battery cell type of the reference database.
type Battery struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	// Text is the catalog identifier, e.g. "LiPo 4200mAh - 80/120C".
	Text string `gorm:"column:text;type:varchar(255);index" json:"text"`
	// CellVolt is the nominal voltage of one cell.
	CellVolt float64 `gorm:"column:cell_volt" json:"cell_volt"`
	// Rin is the internal resistance of one cell in ohms.
	Rin float64 `gorm:"column:rin" json:"Rin"`
	// Capacity is the cell capacity in mAh.
	Capacity   float64 `gorm:"column:capacity" json:"capacity"`
	CRateMax   float64 `gorm:"column:crate_max" json:"crate_max"`
	CRateConst float64 `gorm:"column:crate_const" json:"crate_const"`
	// Weight is the cell weight in grams.
	Weight float64 `gorm:"column:weight" json:"weight"`
}

// TableName overrides the table name for batteries.
func (Battery) TableName() string {
	return "catalog_batteries"
}

// Motor is one brushless motor of the reference database.
type Motor struct {
	ID           uint   `gorm:"primaryKey;column:id" json:"id"`
	Manufacturer string `gorm:"column:manufacturer;type:varchar(255)" json:"manufacturer"`
	// Type is the catalog identifier, e.g. "MN705-S KV260 (260)".
	Type string  `gorm:"column:type;type:varchar(255);index" json:"type"`
	Kv   float64 `gorm:"column:kv" json:"Kv"`
	// Io is the no-load current in amperes.
	Io     float64 `gorm:"column:io" json:"Io"`
	Rin    float64 `gorm:"column:rin" json:"Rin"`
	Weight float64 `gorm:"column:weight" json:"weight"`
}

// TableName overrides the table name for motors.
func (Motor) TableName() string {
	return "catalog_motors"
}

// ESC is one speed controller of the reference database.
type ESC struct {
	ID         uint    `gorm:"primaryKey;column:id" json:"id"`
	Text       string  `gorm:"column:text;type:varchar(255);index" json:"text"`
	Rin        float64 `gorm:"column:rin" json:"Rin"`
	MaxCurrent float64 `gorm:"column:max_current" json:"Imax"`
	Weight     float64 `gorm:"column:weight" json:"weight"`
}

// TableName overrides the table name for speed controllers.
func (ESC) TableName() string {
	return "catalog_escs"
}

// Propeller is one propeller family with its empirical constants.
type Propeller struct {
	ID   uint   `gorm:"primaryKey;column:id" json:"id"`
	Type string `gorm:"column:type;type:varchar(255);index" json:"type"`
	// Tconst scales the static thrust equation.
	Tconst float64 `gorm:"column:tconst" json:"Tconst"`
	// Pconst scales the absorbed power equation.
	Pconst float64 `gorm:"column:pconst" json:"Pconst"`
}

// TableName overrides the table name for propellers.
func (Propeller) TableName() string {
	return "catalog_propellers"
}

// requiredColumns lists, per table, the columns the matcher and resolvers read.
var requiredColumns = map[string][]string{
	Battery{}.TableName():   {"text", "cell_volt", "rin", "capacity", "crate_max", "crate_const", "weight"},
	Motor{}.TableName():     {"manufacturer", "type", "kv", "io", "rin", "weight"},
	ESC{}.TableName():       {"text", "rin", "max_current", "weight"},
	Propeller{}.TableName(): {"type", "tconst", "pconst"},
}

// tableOrder keeps schema checks and logs deterministic.
var tableOrder = []string{
	Battery{}.TableName(),
	Motor{}.TableName(),
	ESC{}.TableName(),
	Propeller{}.TableName(),
}

// Tables returns the catalog table names.
func Tables() []string {
	return append([]string(nil), tableOrder...)
}

// RequiredColumns returns the columns the resolvers read from table.
func RequiredColumns(table string) []string {
	return requiredColumns[table]
}
