package models

// Well-known object names used by the scheduler and advisor defaults
const (
	Wind       = "Wind"
	Solar      = "Solar"
	Mex        = "Mex"
	AMex       = "AMex"
	EConverter = "EConverter"
	Commander  = "Commander"
	BotFactory = "BotFactory"
	BotWorker  = "BotWorker"
)

// DefaultProfiles returns the built-in object table
func DefaultProfiles() []ObjectProfile {
	return []ObjectProfile{
		// Economy buildings
		{Name: Wind, Kind: Building, MetalCost: 40, EnergyCost: 175, BuildpowerCost: 1600, EnergyIncome: 10},
		{Name: Solar, Kind: Building, MetalCost: 155, EnergyCost: 0, BuildpowerCost: 2600, EnergyIncome: 20},
		{Name: Mex, Kind: Building, MetalCost: 50, EnergyCost: 500, BuildpowerCost: 1800, EnergyIncome: -3, MetalIncome: 1.8},
		{Name: AMex, Kind: Building, MetalCost: 620, EnergyCost: 7700, BuildpowerCost: 14900, MetalIncome: 7.3},
		{Name: EConverter, Kind: Building, MetalCost: 1, EnergyCost: 1150, BuildpowerCost: 2600, Converter: true},

		// Producers
		{Name: Commander, Kind: Unit, MetalIncome: 2, EnergyIncome: 25, BuildpowerIncome: 300, Builder: true},
		{Name: BotFactory, Kind: Unit, MetalCost: 620, EnergyCost: 1200, BuildpowerCost: 6500, BuildpowerIncome: 100, Builder: true},
		{Name: BotWorker, Kind: Unit, MetalCost: 110, EnergyCost: 1600, BuildpowerCost: 3450, BuildpowerIncome: 80, Builder: true},

		// Combat units
		{Name: "Pawn", Kind: Unit, MetalCost: 52, EnergyCost: 870, BuildpowerCost: 1420},
		{Name: "Mace", Kind: Unit, MetalCost: 130, EnergyCost: 1300, BuildpowerCost: 2200},
		{Name: "Rocko", Kind: Unit, MetalCost: 120, EnergyCost: 1000, BuildpowerCost: 2010},
		{Name: "Cent", Kind: Unit, MetalCost: 270, EnergyCost: 3100, BuildpowerCost: 4200},
		{Name: "Laz", Kind: Unit, MetalCost: 130, EnergyCost: 1400, BuildpowerCost: 2800},
		{Name: "Thug", Kind: Unit, MetalCost: 140, EnergyCost: 1150, BuildpowerCost: 2100},
	}
}

// DefaultCatalog returns the built-in catalog
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultProfiles()...)
	if err != nil {
		// Static table, only reachable if the table above is edited badly
		panic(err)
	}
	return c
}
