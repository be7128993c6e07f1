package models

// Each entity kind is keyed by its own name type so a RouteName cannot be
// passed where a PlayName is expected. Names compare by exact byte equality.

type FormationName string

type RouteName string

type CategoryName string

type PlayName string

func (n FormationName) String() string { return string(n) }

func (n RouteName) String() string { return string(n) }

func (n CategoryName) String() string { return string(n) }

func (n PlayName) String() string { return string(n) }
