// Package assembly implements the registry that mediates between members and
// laws: fixed-capacity slot allocation, support pledges subject to a
// per-member cap, and law suggestions based on member scores.
//
// Every failure is reported through a sentinel (InvalidID, false or nil);
// none of the operations return errors.
package assembly
