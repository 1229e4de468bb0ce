package minercars

// Catalog is the in-memory vehicle inventory backed by a tabular file.
// Every mutating operation persists the full catalog back to the file.
type Catalog struct {
	path     string
	schema   Schema
	vehicles []Vehicle
}

// OpenCatalog loads the vehicle resource. A missing file yields an empty
// catalog. Rows the factory cannot type are still kept, with defaults
// substituted per column; nothing fails past this boundary.
func OpenCatalog(path string) (*Catalog, error) {
	schema, rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if schema == nil {
		schema = vehicleSchema
	}
	c := &Catalog{path: path, schema: schema}
	for _, row := range rows {
		c.vehicles = append(c.vehicles, vehicleFromRow(schema, row))
	}
	return c, nil
}

// Vehicles returns the inventory in file order.
func (c *Catalog) Vehicles() []Vehicle { return c.vehicles }

// FindByID returns the vehicle with the given catalog id, or nil.
func (c *Catalog) FindByID(id int) *Vehicle {
	for i := range c.vehicles {
		if c.vehicles[i].ID == id {
			return &c.vehicles[i]
		}
	}
	return nil
}

// FindByVIN returns the vehicle with the given VIN, or nil.
func (c *Catalog) FindByVIN(vin string) *Vehicle {
	for i := range c.vehicles {
		if c.vehicles[i].VIN == vin {
			return &c.vehicles[i]
		}
	}
	return nil
}

// Add inserts a vehicle into the catalog and persists it. If a vehicle with
// the same VIN already exists, no new row is created: the existing vehicle's
// availability grows by the requested count instead. Otherwise the vehicle
// gets the next free id (max existing + 1). The stored vehicle is returned.
func (c *Catalog) Add(v Vehicle) (Vehicle, error) {
	if existing := c.FindByVIN(v.VIN); existing != nil {
		existing.Available += v.Available
		return *existing, c.Save()
	}
	v.ID = c.nextID()
	c.vehicles = append(c.vehicles, v)
	return v, c.Save()
}

// Remove deletes the first vehicle with the given VIN and persists the
// catalog. It reports whether anything was removed.
func (c *Catalog) Remove(vin string) (bool, error) {
	for i := range c.vehicles {
		if c.vehicles[i].VIN == vin {
			c.vehicles = append(c.vehicles[:i], c.vehicles[i+1:]...)
			return true, c.Save()
		}
	}
	return false, nil
}

// Save rewrites the backing file from the in-memory state: the header row
// followed by one row per vehicle. It is idempotent.
func (c *Catalog) Save() error {
	rows := make([][]string, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		rows = append(rows, vehicleRow(v))
	}
	return writeTable(c.path, c.schema, rows)
}

func (c *Catalog) nextID() int {
	maxID := 0
	for _, v := range c.vehicles {
		if v.ID > maxID {
			maxID = v.ID
		}
	}
	return maxID + 1
}
