package ecs

// Token is a short-lived handle given to a system for the duration of one
// lifecycle call. It carries at most one outstanding Loan; Request
// replaces that loan (closing the old one first) rather than stacking
// loans on top of each other.
type Token struct {
	resources *Resources
	loan      *Loan
}

func (t *Token) registry() *Registry { return t.resources.registry() }
func (t *Token) entities() *Register { return t.resources.entities() }

// RegisterEntity allocates and returns one fresh Entity.
func (t *Token) RegisterEntity() Entity {
	return t.entities().Next()
}

// Request closes any loan this token currently holds, then blocks until
// req can be fulfilled against the shared registry, returning a new
// token carrying the result. A (nil, nil) result means a requested
// component type was never registered — fatal to the caller.
func (t *Token) Request(req *Request) (*Token, error) {
	if t.loan != nil {
		_ = t.loan.Close()
	}
	loan, err := t.registry().Request(req)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, nil
	}
	return &Token{resources: t.resources, loan: loan}, nil
}

// Close releases any loan held by this token. Systems should
// `defer tok.Close()` immediately after obtaining a token.
func (t *Token) Close() error {
	if t.loan == nil {
		return nil
	}
	return t.loan.Close()
}
