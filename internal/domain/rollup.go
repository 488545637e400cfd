package domain

// MemberRollup é a parcela de um membro no roll-up do grupo
type MemberRollup struct {
	OwnerID     int     `json:"owner_id"`
	DisplayName string  `json:"display_name"`
	Records     int     `json:"records"`
	Total       Metrics `json:"total"`
}

// GroupRollup soma planos ou execuções de todos os membros de um grupo.
// É calculado no momento da consulta e nunca gravado.
type GroupRollup struct {
	GroupID int            `json:"group_id"`
	Type    Granularity    `json:"type"`
	Period  PeriodKey      `json:"period"`
	Members []MemberRollup `json:"members"`
	Total   Metrics        `json:"total"`
}
