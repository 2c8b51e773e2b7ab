package tenant

type Plan string

const (
	PlanFree Plan = "free"
	PlanPlus Plan = "plus"
	PlanPro  Plan = "pro"
)

type Feature string

const (
	FeatureEstoque       Feature = "estoque"
	FeatureMovimentacoes Feature = "movimentacoes"
	FeatureInvites       Feature = "invites"
)

var planFeatures = map[Plan]map[Feature]bool{
	PlanFree: {FeatureEstoque: false, FeatureMovimentacoes: false, FeatureInvites: false},
	PlanPlus: {FeatureEstoque: true, FeatureMovimentacoes: true, FeatureInvites: false},
	PlanPro:  {FeatureEstoque: true, FeatureMovimentacoes: true, FeatureInvites: true},
}

// CanAccess responde se o plano libera a funcionalidade.
// Plano desconhecido se comporta como free.
func CanAccess(plan Plan, feature Feature) bool {
	features, ok := planFeatures[plan]
	if !ok {
		return false
	}
	return features[feature]
}
