package models

func (c Client) ResourceID() string {
	return c.ID
}

func (c Client) ResourceKind() string {
	return "client"
}

func (b Barrel) ResourceID() string {
	return b.ID
}

func (b Barrel) ResourceKind() string {
	return "barrel"
}

func (f Fermenter) ResourceID() string {
	return f.ID
}

func (f Fermenter) ResourceKind() string {
	return "fermenter"
}

func (b Batch) ResourceID() string {
	return b.ID
}

func (b Batch) ResourceKind() string {
	return "batch"
}

func (i Invoice) ResourceID() string {
	return i.ID
}

func (i Invoice) ResourceKind() string {
	return "invoice"
}

func (p Payment) ResourceID() string {
	return p.ID
}

func (p Payment) ResourceKind() string {
	return "payment"
}
