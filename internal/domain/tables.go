package domain

var Tables = []interface{}{
	// System
	&SysOpr{},
	&SysOprLog{},
	// Catalog
	&Product{},
	&Category{},
	&Platform{},
	// Inquiries
	&Contact{},
}
