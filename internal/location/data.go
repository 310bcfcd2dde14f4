package location

// region pairs a state (or union territory) with its listed cities.
type region struct {
	State  string
	Cities []string
}

// indiaRegions is the supported country scope: Indian states and union
// territories with their major cities. The set follows the ISO 3166-2:IN
// subdivision list; city coverage is the populous cities an event board
// actually sees, not an exhaustive gazetteer.
var indiaRegions = []region{
	{"Andhra Pradesh", []string{"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Tirupati", "Kurnool", "Kakinada"}},
	{"Arunachal Pradesh", []string{"Itanagar", "Naharlagun", "Pasighat", "Tawang"}},
	{"Assam", []string{"Guwahati", "Silchar", "Dibrugarh", "Jorhat", "Nagaon", "Tezpur"}},
	{"Bihar", []string{"Patna", "Gaya", "Bhagalpur", "Muzaffarpur", "Darbhanga"}},
	{"Chhattisgarh", []string{"Raipur", "Bhilai", "Bilaspur", "Korba", "Durg"}},
	{"Goa", []string{"Panaji", "Margao", "Vasco", "Mapusa", "Ponda"}},
	{"Gujarat", []string{"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar", "Gandhinagar"}},
	{"Haryana", []string{"Gurugram", "Faridabad", "Panipat", "Ambala", "Karnal", "Hisar", "Rohtak"}},
	{"Himachal Pradesh", []string{"Shimla", "Dharamshala", "Solan", "Mandi", "Kullu", "Manali"}},
	{"Jharkhand", []string{"Ranchi", "Jamshedpur", "Dhanbad", "Bokaro", "Deoghar"}},
	{"Karnataka", []string{"Bengaluru", "Bangalore", "Mysuru", "Mysore", "Mangaluru", "Hubballi", "Belagavi", "Shivamogga", "Udupi"}},
	{"Kerala", []string{"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur", "Kollam", "Kannur", "Alappuzha"}},
	{"Madhya Pradesh", []string{"Indore", "Bhopal", "Jabalpur", "Gwalior", "Ujjain", "Sagar"}},
	{"Maharashtra", []string{"Mumbai", "Pune", "Nagpur", "Nashik", "Thane", "Aurangabad", "Solapur", "Kolhapur", "Amravati"}},
	{"Manipur", []string{"Imphal", "Thoubal", "Bishnupur"}},
	{"Meghalaya", []string{"Shillong", "Tura", "Jowai"}},
	{"Mizoram", []string{"Aizawl", "Lunglei", "Champhai"}},
	{"Nagaland", []string{"Kohima", "Dimapur", "Mokokchung"}},
	{"Odisha", []string{"Bhubaneswar", "Cuttack", "Rourkela", "Berhampur", "Sambalpur", "Puri"}},
	{"Punjab", []string{"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda", "Mohali"}},
	{"Rajasthan", []string{"Jaipur", "Jodhpur", "Udaipur", "Kota", "Bikaner", "Ajmer", "Alwar"}},
	{"Sikkim", []string{"Gangtok", "Namchi", "Gyalshing"}},
	{"Tamil Nadu", []string{"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem", "Tirunelveli", "Erode", "Vellore"}},
	{"Telangana", []string{"Hyderabad", "Warangal", "Nizamabad", "Karimnagar", "Khammam", "Secunderabad"}},
	{"Tripura", []string{"Agartala", "Udaipur", "Dharmanagar"}},
	{"Uttar Pradesh", []string{"Lucknow", "Kanpur", "Agra", "Varanasi", "Prayagraj", "Ghaziabad", "Noida", "Meerut", "Gorakhpur"}},
	{"Uttarakhand", []string{"Dehradun", "Haridwar", "Rishikesh", "Haldwani", "Roorkee", "Nainital"}},
	{"West Bengal", []string{"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri", "Darjeeling"}},
	{"Andaman and Nicobar Islands", []string{"Port Blair"}},
	{"Chandigarh", []string{"Chandigarh"}},
	{"Dadra and Nagar Haveli and Daman and Diu", []string{"Daman", "Diu", "Silvassa"}},
	{"Delhi", []string{"Delhi", "New Delhi", "Dwarka", "Rohini"}},
	{"Jammu and Kashmir", []string{"Srinagar", "Jammu", "Anantnag", "Baramulla"}},
	{"Ladakh", []string{"Leh", "Kargil"}},
	{"Lakshadweep", []string{"Kavaratti"}},
	{"Puducherry", []string{"Puducherry", "Karaikal", "Mahe", "Yanam"}},
}
